package models

import "time"

type Role string

const (
	RoleBranch Role = "branch"
	RoleB2B    Role = "b2b"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBranch, RoleB2B, RoleAdmin:
		return true
	}
	return false
}

// Permission is what a handler actually needs; handlers ask Can()
// instead of comparing role strings.
type Permission string

const (
	PermPlaceOrders    Permission = "place_orders"    // create + list own orders
	PermViewAllOrders  Permission = "view_all_orders" // admin dashboard + full list
	PermManageCatalogs Permission = "manage_catalogs" // production, coffees, inventory, users
)

var rolePermissions = map[Role]map[Permission]bool{
	RoleBranch: {
		PermPlaceOrders: true,
	},
	RoleB2B: {
		PermPlaceOrders: true,
	},
	RoleAdmin: {
		PermViewAllOrders:  true,
		PermManageCatalogs: true,
	},
}

func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}

// CustomerType maps the ordering role onto the order's customer_type
// column. Admins do not place orders, so the mapping only distinguishes
// b2b from branch.
func (r Role) CustomerType() CustomerType {
	if r == RoleB2B {
		return CustomerB2B
	}
	return CustomerBranch
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
	Label        string `gorm:"size:100"`
	CreatedAt    time.Time

	Orders []Order
}

// DisplayLabel is what the UI shows; label is optional in the schema.
func (u *User) DisplayLabel() string {
	if u.Label != "" {
		return u.Label
	}
	return u.Username
}
