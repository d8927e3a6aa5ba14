package api

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	errNullAnimal      = errors.New("animal is null")
	errNullEnvironment = errors.New("environment is null")
)

// Animal is one animal as served by the API. The server's "_id" field maps to
// ID. ImageGallery and Facts are optional on the wire; when absent or null they
// decode to empty, non-nil slices.
type Animal struct {
	ID           string   `json:"_id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Image        string   `json:"image" yaml:"image"`
	Description  string   `json:"description" yaml:"description"`
	ImageGallery []string `json:"imageGallery,omitempty" yaml:"imageGallery,omitempty"`
	Facts        []string `json:"facts,omitempty" yaml:"facts,omitempty"`
}

// Environment is one habitat together with the animals embedded in it by the
// server. Animals is empty, never nil, after decoding.
type Environment struct {
	ID          string   `json:"_id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Animals     []Animal `json:"animals" yaml:"animals"`
}

// UnmarshalJSON decodes an animal and applies the empty-on-absence rule for
// the optional sequences. A null animal is an error.
func (a *Animal) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullAnimal
	}
	type rawAnimal Animal
	var raw rawAnimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Animal(raw).normalized()
	return nil
}

// UnmarshalJSON decodes an environment and normalises its embedded animals.
// A null environment is an error.
func (e *Environment) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullEnvironment
	}
	type rawEnvironment Environment
	var raw rawEnvironment
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Environment(raw).normalized()
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func (a Animal) normalized() Animal {
	if a.ImageGallery == nil {
		a.ImageGallery = []string{}
	}
	if a.Facts == nil {
		a.Facts = []string{}
	}
	return a
}

func (e Environment) normalized() Environment {
	if e.Animals == nil {
		e.Animals = []Animal{}
	}
	for i := range e.Animals {
		e.Animals[i] = e.Animals[i].normalized()
	}
	return e
}

// Clone returns a deep copy of the animal.
func (a Animal) Clone() Animal {
	out := a
	out.ImageGallery = append([]string{}, a.ImageGallery...)
	out.Facts = append([]string{}, a.Facts...)
	return out
}

// Clone returns a deep copy of the environment, including its animals.
func (e Environment) Clone() Environment {
	out := e
	out.Animals = make([]Animal, len(e.Animals))
	for i, a := range e.Animals {
		out.Animals[i] = a.Clone()
	}
	return out
}
