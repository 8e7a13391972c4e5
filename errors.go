/*
 * errors.go, part of gocrys.
 *
 *
 * Copyright 2024 The gocrys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package crys

import "strings"

//ErrorKind tells apart the different failures of the library.
type ErrorKind int

const (
	//InvalidUnit is returned when a unit-toggle target is not recognized.
	InvalidUnit ErrorKind = iota
	//InconsistentGrid is returned when charge density maps with different grids or shapes are combined.
	InconsistentGrid
	//PreconditionViolation is returned when the band energies have no Fermi level crossing.
	PreconditionViolation
	//InvalidInput is returned when the arrays given to a constructor are not consistent.
	InvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidUnit:
		return "InvalidUnit"
	case InconsistentGrid:
		return "InconsistentGrid"
	case PreconditionViolation:
		return "PreconditionViolation"
	case InvalidInput:
		return "InvalidInput"
	}
	return "Unknown"
}

//Error is the error type returned by all the functions and methods in this package.
//The Decorate method allows to add information to the error as it is passed up, without
//changing its type or wrapping it.
type Error struct {
	kind     ErrorKind
	message  string
	deco     []string
	critical bool
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{kind: kind, message: message, critical: true}
}

//Error returns a string with an error message, followed by the decorations, if any.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return "gocrys: " + err.kind.String() + ": " + err.message
	}
	return "gocrys: " + err.kind.String() + ": " + err.message + " [" + strings.Join(err.deco, " <- ") + "]"
}

//Kind returns the kind of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
//All the errors currently produced are critical.
func (err *Error) Critical() bool { return err.critical }

//Is reports whether target is an *Error of the same kind, so the
//sentinels below can be used with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == err.kind
}

//Sentinels for errors.Is.
var (
	ErrInvalidUnit      = &Error{kind: InvalidUnit, message: "unknown unit"}
	ErrInconsistentGrid = &Error{kind: InconsistentGrid, message: "inconsistent grid"}
	ErrPrecondition     = &Error{kind: PreconditionViolation, message: "precondition violated"}
	ErrInvalidInput     = &Error{kind: InvalidInput, message: "invalid input"}
)

//errDecorate decorates err with the caller's name before returning it,
//if err is an *Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape           = PanicMsg("gocrys: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("gocrys: Index out of range")
	ErrNoSpinMap       = PanicMsg("gocrys: No spin density map available")
)
