// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides sticky error handling when building and combining
// bigint.Ints.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) bigint.Int
//
// create a new bigint.Int from x. Validation failures are not returned but
// recorded in the context: the first error encountered is kept and all
// further operations with the context are no-ops returning 0, until
// (*Context).Err is called to check for errors.
//
// This allows a series of constructions and operations to be written without
// checking errors after each step:
//
//    var c context.Context
//    x := c.NewString(a)
//    y := c.NewString(b)
//    z := c.Mul(c.Add(x, y), c.NewInt64(2))
//    if err := c.Err(); err != nil {
//        return err
//    }
package context

import (
	"github.com/db47h/bigint"
)

// A Context records the first error encountered while building Ints. The zero
// value is ready to use.
type Context struct {
	err error
}

// New returns a new context.
func New() *Context {
	return new(Context)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// NewString returns the Int represented by s, as parsed by bigint.Parse.
func (c *Context) NewString(s string) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	x, err := bigint.Parse(s)
	if err != nil {
		c.err = err
	}
	return x
}

// NewSlots returns the Int with slots s, as built by bigint.NewFromSlots.
func (c *Context) NewSlots(s []int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	x, err := bigint.NewFromSlots(s)
	if err != nil {
		c.err = err
	}
	return x
}

// NewInt64 returns the Int of value x.
func (c *Context) NewInt64(x int64) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return bigint.NewFromInt64(x)
}

// Add returns x+y.
func (c *Context) Add(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Add(y)
}

// Sub returns x-y.
func (c *Context) Sub(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Sub(y)
}

// Mul returns x*y.
func (c *Context) Mul(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Mul(y)
}

// Neg returns -x.
func (c *Context) Neg(x bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Neg()
}

// Inc increments z and returns its new value. z is left untouched if c holds
// an error.
func (c *Context) Inc(z *bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return z.Inc()
}

// Dec decrements z and returns its new value. z is left untouched if c holds
// an error.
func (c *Context) Dec(z *bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return z.Dec()
}

// Sum parses every string in ss and returns their sum.
func (c *Context) Sum(ss ...string) bigint.Int {
	var z bigint.Int
	for _, s := range ss {
		z = c.Add(z, c.NewString(s))
	}
	return z
}
