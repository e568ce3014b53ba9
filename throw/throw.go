// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

// Package throw provides error values intended to be thrown by panic().
// Errors can carry typed detail payloads that remain retrievable with
// FindDetail after the panic value is recovered.
package throw

import "reflect"

type msgWrap struct {
	msg     string
	details interface{}
	err     error
}

func (v msgWrap) Error() string {
	if v.err == nil {
		return v.msg
	}
	return v.msg + ":\t" + v.err.Error()
}

func (v msgWrap) Unwrap() error {
	return v.err
}

func (v msgWrap) AsDetail(target interface{}) bool {
	return v.details != nil && asDetail(v.details, target)
}

// E creates an error with the given message and attaches the given details to it.
func E(msg string, details ...interface{}) error {
	return WithDetails(msgWrap{msg: msg}, details...)
}

// W wraps the given error with a message and attaches the given details.
func W(err error, msg string, details ...interface{}) error {
	if err == nil {
		panic(IllegalValue())
	}
	return WithDetails(msgWrap{msg: msg, err: err}, details...)
}

// WithDetails attaches the given details to the given error.
// Every detail gets its own wrap, so each remains individually retrievable.
func WithDetails(err error, details ...interface{}) error {
	if err == nil {
		panic(IllegalValue())
	}
	for _, d := range details {
		if d == nil {
			continue
		}
		if w, ok := err.(msgWrap); ok && w.details == nil {
			w.details = d
			err = w
			continue
		}
		err = msgWrap{msg: "", details: d, err: err}
	}
	return err
}

// IllegalValue indicates that an argument violates the callee's contract.
func IllegalValue() error {
	return msgWrap{msg: "illegal value"}
}

// IllegalState indicates that an operation is not valid for the current state of the receiver.
func IllegalState() error {
	return msgWrap{msg: "illegal state"}
}

// Impossible indicates a "shouldn't happen" defect.
func Impossible() error {
	return msgWrap{msg: "impossible"}
}

// Unsupported indicates an unimplemented or unavailable operation.
func Unsupported() error {
	return msgWrap{msg: "unsupported"}
}

// IsEqual returns true when both errors are non-nil, comparable and equal.
// Unlike (==) it will not panic on incomparable error types.
func IsEqual(t, o error) bool {
	if t == nil || o == nil {
		return false
	}
	vt := reflect.ValueOf(t)
	vo := reflect.ValueOf(o)
	if vt.Type() != vo.Type() || !vt.Type().Comparable() {
		return false
	}
	return t == o
}
