package once

import "sync"

// Value wraps fn so that it executes at most once for the lifetime of the
// wrapper. Every call returns the first call's result, including its
// error. Safe for concurrent use; concurrent first calls block until the
// single execution completes.
func Value[T any](fn func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = fn()
		})
		return val, err
	}
}

// Arg is like Value for a function taking one argument. The first call's
// argument is the one fn sees; arguments of later calls are ignored and
// the stored result is returned regardless.
func Arg[T, V any](fn func(T) (V, error)) func(T) (V, error) {
	var (
		once sync.Once
		val  V
		err  error
	)
	return func(arg T) (V, error) {
		once.Do(func() {
			val, err = fn(arg)
		})
		return val, err
	}
}

// Do is like Value for a function returning only an error.
func Do(fn func() error) func() error {
	var (
		once sync.Once
		err  error
	)
	return func() error {
		once.Do(func() {
			err = fn()
		})
		return err
	}
}
