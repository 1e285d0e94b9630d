/*
File    : golox/internal/callable/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package callable

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/value"
)

// Class is a Lox class value: a name, an optional superclass, and its own
// methods (spec.md §4.4). Calling a Class constructs a new Instance and,
// if an `init` method exists, runs it against that instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) Type() value.Type { return value.ClassType }
func (c *Class) String() string   { return c.Name }

// FindMethod looks up name on this class, then walks up the superclass
// chain, mirroring single-inheritance method resolution.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the initializer's arity (an inherited `init` counts), or 0 if
// neither the class nor any ancestor declares one.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c and, if c (or an ancestor) declares
// `init`, binds and invokes it against the new instance before returning
// it.
func (c *Class) Call(interp Interp, args []value.Value) (value.Value, *diagnostics.RuntimeError) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, rerr := init.Bind(instance).Call(interp, args); rerr != nil {
			return nil, rerr
		}
	}
	return instance, nil
}

// Instance is a live object created from a Class: its class plus its own
// mutable field set.
type Instance struct {
	Class  *Class
	Fields map[string]value.Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]value.Value)}
}

func (i *Instance) Type() value.Type { return value.InstanceType }
func (i *Instance) String() string   { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get reads a field first, then a method bound to this instance
// (spec.md §4.4: fields shadow methods of the same name).
func (i *Instance) Get(name string) (value.Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set stores a field on the instance, creating it if absent.
func (i *Instance) Set(name string, v value.Value) {
	i.Fields[name] = v
}
