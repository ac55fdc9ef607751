package service

import (
	"errors"
	"strings"

	"github.com/Dmungal1308/QuickSales-sub000/internal/adapter/rest"
)

// Validation and user-facing errors. Messages are in Spanish because they
// surface directly in the app UI.
var (
	ErrEmailRequired       = errors.New("El email es obligatorio")
	ErrEmailInvalid        = errors.New("El email no es válido")
	ErrPasswordRequired    = errors.New("La contraseña es obligatoria")
	ErrPasswordMismatch    = errors.New("Las contraseñas no coinciden")
	ErrNameRequired        = errors.New("El nombre es obligatorio")
	ErrUsernameRequired    = errors.New("El nombre de usuario es obligatorio")
	ErrInvalidAmount       = errors.New("La cantidad debe ser mayor que cero")
	ErrInsufficientBalance = errors.New("No tienes saldo suficiente")
	ErrEmptyMessage        = errors.New("El mensaje no puede estar vacío")
	ErrCannotDeleteSelf    = errors.New("No puedes eliminar tu propia cuenta")
)

// normalizeServerError maps raw server business errors to the user-facing
// messages the app shows. The backend reports an insufficient balance with
// varying phrasing; all of them contain "Saldo insuficiente".
func normalizeServerError(err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := rest.AsAPIError(err); ok {
		if strings.Contains(apiErr.Message, "Saldo insuficiente") {
			return ErrInsufficientBalance
		}
	}
	return err
}
