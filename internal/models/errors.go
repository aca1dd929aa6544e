package models

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors shared by repositories, services and handlers. Handlers map
// these onto HTTP statuses with errors.Is / errors.As; anything not in this
// taxonomy is treated as an internal storage failure.
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrPostSold      = errors.New("artwork is already sold")
	ErrCartNotFound  = errors.New("cart not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
)

// ItemsUnavailableError reports a checkout aborted because one or more cart
// lines referenced artworks that were sold (or delisted) before the locks
// were acquired. The whole transaction rolls back; the cart is untouched.
type ItemsUnavailableError struct {
	PostIDs []string
}

func (e *ItemsUnavailableError) Error() string {
	return fmt.Sprintf("items no longer available: %s", strings.Join(e.PostIDs, ", "))
}
