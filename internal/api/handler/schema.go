package handler

import "time"

// envelope is the standard body for all resource routes:
// {"success": bool, "data": ..., "message": ..., "count": ...}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func ok(data any) envelope {
	return envelope{Success: true, Data: data}
}

func okCount(data any, count int) envelope {
	return envelope{Success: true, Data: data, Count: &count}
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin manager viewer"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public view of a user. The password hash has no field
// here at all, so it cannot leak through serialization.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

// --- Assets ---

type createAssetRequest struct {
	AssetName    string  `json:"asset_name"    validate:"required"`
	AssetType    string  `json:"asset_type"    validate:"required,oneof=Laptop Desktop Printer Router Chair Table"`
	SerialNumber string  `json:"serial_number" validate:"required"`
	Brand        string  `json:"brand"         validate:"required"`
	Model        string  `json:"model"         validate:"required"`
	PurchaseDate string  `json:"purchase_date" validate:"required"`
	Condition    string  `json:"condition"     validate:"omitempty,oneof=New Good Fair Poor Damaged"`
	Status       string  `json:"status"        validate:"omitempty,oneof=Available 'In Use' Damaged"`
	AssignedTo   *string `json:"assigned_to"`
	Location     *string `json:"location"`
}

type assigneeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type assetResponse struct {
	ID           string            `json:"id"`
	AssetName    string            `json:"asset_name"`
	AssetType    string            `json:"asset_type"`
	SerialNumber string            `json:"serial_number"`
	Brand        string            `json:"brand"`
	Model        string            `json:"model"`
	PurchaseDate time.Time         `json:"purchase_date"`
	Condition    string            `json:"condition"`
	Status       string            `json:"status"`
	AssignedTo   *assigneeResponse `json:"assigned_to"`
	Location     *string           `json:"location"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// --- Categories ---

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// --- Users ---

type updateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager viewer"`
}

// --- Reports ---

type typeCountResponse struct {
	AssetType string `json:"asset_type"`
	Count     int64  `json:"count"`
}

type locationCountResponse struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}
