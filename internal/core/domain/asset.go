package domain

import (
	"errors"
	"time"
)

// AssetType enumerates the kinds of assets the inventory tracks.
const (
	TypeLaptop  = "Laptop"
	TypeDesktop = "Desktop"
	TypePrinter = "Printer"
	TypeRouter  = "Router"
	TypeChair   = "Chair"
	TypeTable   = "Table"
)

// Condition describes physical state.
const (
	ConditionNew     = "New"
	ConditionGood    = "Good"
	ConditionFair    = "Fair"
	ConditionPoor    = "Poor"
	ConditionDamaged = "Damaged"
)

// Status tracks availability.
const (
	StatusAvailable = "Available"
	StatusInUse     = "In Use"
	StatusDamaged   = "Damaged"
)

// DefaultCondition and DefaultStatus apply when a create payload omits them.
const (
	DefaultCondition = ConditionGood
	DefaultStatus    = StatusAvailable
)

var assetTypes = map[string]struct{}{
	TypeLaptop: {}, TypeDesktop: {}, TypePrinter: {}, TypeRouter: {}, TypeChair: {}, TypeTable: {},
}

var conditions = map[string]struct{}{
	ConditionNew: {}, ConditionGood: {}, ConditionFair: {}, ConditionPoor: {}, ConditionDamaged: {},
}

var statuses = map[string]struct{}{
	StatusAvailable: {}, StatusInUse: {}, StatusDamaged: {},
}

// ValidAssetType reports whether t is a known asset type.
func ValidAssetType(t string) bool {
	_, ok := assetTypes[t]
	return ok
}

// ValidCondition reports whether c is a known condition.
func ValidCondition(c string) bool {
	_, ok := conditions[c]
	return ok
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	_, ok := statuses[s]
	return ok
}

var (
	ErrAssetNotFound   = errors.New("asset not found")
	ErrDuplicateSerial = errors.New("serial number already in use")
)

// ValidationError carries a field-level violation back to the handler
// boundary, where it maps to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error { return &ValidationError{Msg: msg} }

// Asset is an inventory item. AssignedTo is a weak reference to a user id:
// the asset does not own the user, and a dangling reference resolves to no
// assignee rather than an error.
type Asset struct {
	ID           string    `json:"id"`
	AssetName    string    `json:"asset_name"`
	AssetType    string    `json:"asset_type"`
	SerialNumber string    `json:"serial_number"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	PurchaseDate time.Time `json:"purchase_date"`
	Condition    string    `json:"condition"`
	Status       string    `json:"status"`
	AssignedTo   *string   `json:"assigned_to,omitempty"`
	Location     *string   `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
