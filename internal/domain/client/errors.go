package client

import "errors"

var ErrNotFound = errors.New("client not found")

// DuplicateDNIError lleva el resumen del cliente ya registrado para que
// el caller pueda desambiguar sin una segunda consulta.
type DuplicateDNIError struct {
	ExistingID   string
	ExistingName string
}

func (e *DuplicateDNIError) Error() string {
	return "duplicate_dni"
}
