package catalog

import (
	"fmt"

	"github.com/magabrotheeeer/pricing-engine/internal/config"
	"github.com/magabrotheeeer/pricing-engine/internal/models"
)

// demoCatalog — набор, который используется, если в конфиге каталог пуст.
// Каждый продукт создаётся своим способом: конструктором, из словаря и из строки.
func demoCatalog() ([]models.Product, []*models.User, []string, error) {
	const op = "app.catalog.demoCatalog"

	laptop, err := models.NewProduct("Laptop", 50000, 10, 18)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	phone, err := models.ProductFromMap(map[string]any{
		"name":       "Phone",
		"base_price": 20000,
		"discount":   5,
		"tax":        18,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	headphones, err := models.ProductFromString("Headphones,3000,20,18")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	alice, err := models.UserFromMap(map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"role":     "Admin",
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	products := []models.Product{laptop, phone, headphones}
	users := []*models.User{
		models.GuestUser(),
		models.NewUser("john_doe", "john@example.com", models.WithRole(models.RoleRegistered)),
		alice,
	}
	return products, users, []string{"john_doe"}, nil
}

// configCatalog собирает продукты и пользователей из конфига.
// Гостевой пользователь всегда добавляется первым.
func configCatalog(c config.Catalog) ([]models.Product, []*models.User, error) {
	const op = "app.catalog.configCatalog"

	products := make([]models.Product, 0, len(c.Products)+len(c.ProductRecords))
	for _, line := range c.Products {
		p, err := models.ProductFromString(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: product %q: %w", op, line, err)
		}
		products = append(products, p)
	}
	for i, record := range c.ProductRecords {
		p, err := models.ProductFromMap(record)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: product record #%d: %w", op, i, err)
		}
		products = append(products, p)
	}

	users := make([]*models.User, 0, len(c.Users)+1)
	users = append(users, models.GuestUser())
	for i, record := range c.Users {
		u, err := models.UserFromMap(record)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: user record #%d: %w", op, i, err)
		}
		users = append(users, u)
	}
	return products, users, nil
}
