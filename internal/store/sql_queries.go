package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-food-order/models"
)

// Table names.
const (
	customersTable   = "customers"
	restaurantsTable = "restaurants"
	menusTable       = "menus"
	ordersTable      = "orders"
)

var customerColumns = []string{
	"id", "username", "password_hash", "fullname", "address", "phone", "email", "created_at",
}

// customerPublicColumns excludes the password digest.
var customerPublicColumns = []string{
	"id", "username", "fullname", "address", "phone", "email", "created_at",
}

var menuColumns = []string{
	"id", "restaurant_id", "name", "description", "price", "category",
}

// newStatementBuilder returns a squirrel builder with the placeholder format
// of the given driver: $n for postgres, ? for sqlite.
func newStatementBuilder(driver string) (sq.StatementBuilderType, error) {
	switch driver {
	case DriverPostgres:
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar), nil
	case DriverSQLite:
		return sq.StatementBuilder.PlaceholderFormat(sq.Question), nil
	default:
		return sq.StatementBuilderType{}, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func buildInsertCustomerQuery(b sq.StatementBuilderType, customer models.Customer) (string, []any, error) {
	return b.Insert(customersTable).
		Columns("username", "password_hash", "fullname", "address", "phone", "email").
		Values(customer.Username, customer.PasswordHash, customer.Fullname, customer.Address, customer.Phone, customer.Email).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildFindCustomerByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(customerColumns...).
		From(customersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCustomerExistsQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("1").
		From(customersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
}

func buildListCustomersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(customerPublicColumns...).
		From(customersTable).
		OrderBy("id").
		ToSql()
}

func buildListMenusQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(
		"m.id", "m.name", "m.description", "m.price", "m.category",
		"r.id", "r.name", "r.address", "r.phone", "r.menu_description",
	).
		From(menusTable + " m").
		Join(restaurantsTable + " r ON r.id = m.restaurant_id").
		OrderBy("m.id").
		ToSql()
}

func buildFindMenuByIDQuery(b sq.StatementBuilderType, menuID int64) (string, []any, error) {
	return b.Select(menuColumns...).
		From(menusTable).
		Where(sq.Eq{"id": menuID}).
		ToSql()
}

func buildInsertOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return b.Insert(ordersTable).
		Columns("restaurant_id", "menu_id", "quantity", "price", "total", "status", "customer_id").
		Values(order.RestaurantID, order.MenuID, order.Quantity, order.Price, order.Total, string(order.Status), order.CustomerID).
		Suffix("RETURNING id, created_at").
		ToSql()
}

// buildOrderSummaryQuery aggregates over the customer's orders only, so a
// customer without orders yields a NULL name and a zero total.
func buildOrderSummaryQuery(b sq.StatementBuilderType, customerID int64) (string, []any, error) {
	return b.Select("MAX(c.fullname)", "COALESCE(SUM(o.total), 0)").
		From(ordersTable + " o").
		Join(customersTable + " c ON c.id = o.customer_id").
		Where(sq.Eq{"o.customer_id": customerID}).
		ToSql()
}

func buildDatabaseTimeQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("CURRENT_TIMESTAMP").ToSql()
}
