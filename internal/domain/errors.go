package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownProfile  = errors.New("unknown cuisine")
	ErrSlotOutOfRange  = errors.New("slot index out of range")
	ErrSlotLocked      = errors.New("slot is locked")
	ErrSingleSlot      = errors.New("category holds a single ingredient")
	ErrSlotCap         = errors.New("category is full")
	ErrLastSlot        = errors.New("category needs at least one ingredient")
	ErrEmptyCatalog    = errors.New("catalog has no ingredients")
)
