package book

import (
	"slices"
	"time"
)

// Record aggregates a single contact: an immutable name, an ordered list of
// unique phone numbers, and an optional date of birth.
type Record struct {
	name     string
	phones   []string
	birthday time.Time
	hasBday  bool
}

// NewRecord creates a record with the given name and no phones.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact's name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []string {
	return slices.Clone(r.phones)
}

// FindPhone reports whether the record holds an exact match for phone.
func (r *Record) FindPhone(phone string) (string, bool) {
	for _, p := range r.phones {
		if p == phone {
			return p, true
		}
	}
	return "", false
}

// AddPhone validates the value and appends it, preserving insertion order.
// Adding a phone the record already holds fails with ErrPhoneDuplicate.
func (r *Record) AddPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if _, ok := r.FindPhone(phone); ok {
		return ErrPhoneDuplicate
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes an exact match, or fails with PhoneNotFoundError.
func (r *Record) RemovePhone(phone string) error {
	for i, p := range r.phones {
		if p == phone {
			r.phones = slices.Delete(r.phones, i, i+1)
			return nil
		}
	}
	return &PhoneNotFoundError{Phone: phone}
}

// EditPhone replaces oldPhone with newPhone.
//
// The replacement is atomic: newPhone is fully validated before any mutation,
// so a failed edit leaves the record unchanged.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if _, ok := r.FindPhone(oldPhone); !ok {
		return &PhoneNotFoundError{Phone: oldPhone}
	}
	if err := ValidatePhone(newPhone); err != nil {
		return err
	}
	if _, ok := r.FindPhone(newPhone); ok && newPhone != oldPhone {
		return ErrPhoneDuplicate
	}
	if err := r.RemovePhone(oldPhone); err != nil {
		return err
	}
	r.phones = append(r.phones, newPhone)
	return nil
}

// SetBirthday parses the DD-MM-YYYY value and replaces any existing birthday.
// It reports whether a birthday was already set, so the caller can distinguish
// "added" from "updated".
func (r *Record) SetBirthday(value string) (updated bool, err error) {
	t, err := ParseBirthday(value)
	if err != nil {
		return false, err
	}
	updated = r.hasBday
	r.birthday = t
	r.hasBday = true
	return updated, nil
}

// Birthday returns the date of birth and whether one has been set.
func (r *Record) Birthday() (time.Time, bool) {
	return r.birthday, r.hasBday
}
