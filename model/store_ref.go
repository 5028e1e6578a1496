package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StoreKind distinguishes the two monetary store namespaces. Account and card
// ids are independent sequences, so a bare id is never a safe key on its own.
type StoreKind string

const (
	StoreAccount StoreKind = "account"
	StoreCard    StoreKind = "card"
)

var ErrInvalidStoreRef = errors.New("invalid store reference")

// StoreRef is a typed reference to a monetary store, decoded once at the API
// boundary from the composite "account_3" / "card_7" form.
type StoreRef struct {
	Kind StoreKind `json:"kind"`
	ID   int       `json:"id"`
}

func (r StoreRef) String() string {
	return fmt.Sprintf("%s_%d", r.Kind, r.ID)
}

// ParseStoreRef decodes a composite store key such as "account_3" or "card_7".
func ParseStoreRef(s string) (StoreRef, error) {
	kind, idStr, found := strings.Cut(s, "_")
	if !found {
		return StoreRef{}, ErrInvalidStoreRef
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return StoreRef{}, ErrInvalidStoreRef
	}

	switch StoreKind(kind) {
	case StoreAccount, StoreCard:
		return StoreRef{Kind: StoreKind(kind), ID: id}, nil
	default:
		return StoreRef{}, ErrInvalidStoreRef
	}
}
