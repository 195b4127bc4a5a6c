package httperr

import "errors"

// BusinessError identifica una falla de regla de negocio por su código
// (el mismo código snake_case que viaja en el cuerpo de la respuesta).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string { return e.Code }

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reporta si err es un BusinessError con el código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
