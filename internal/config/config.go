// Package config предоставялет структуры и функции для загрузки конфига
// из YAML-файла или переменных окружения.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"local"`
	Pricing Pricing `yaml:"pricing"`
	Catalog Catalog `yaml:"catalog"`
}

// Pricing структура для настройки расчёта цен
type Pricing struct {
	Rounding string `yaml:"rounding" env:"PRICING_ROUNDING" env-default:"half_even"`
}

// Catalog описывает начальные данные запуска. Пустой каталог означает демонстрационный набор.
type Catalog struct {
	Products       []string         `yaml:"products"`        // Строки вида name,base_price,discount,tax
	ProductRecords []map[string]any `yaml:"product_records"` // Продукты в виде словарей
	Users          []map[string]any `yaml:"users"`           // Пользователи в виде словарей
	Deactivate     []string         `yaml:"deactivate"`      // Имена пользователей для деактивации
}

// IsEmpty сообщает, что в конфиге не задано ни продуктов, ни пользователей, ни деактиваций.
func (c Catalog) IsEmpty() bool {
	return len(c.Products) == 0 && len(c.ProductRecords) == 0 &&
		len(c.Users) == 0 && len(c.Deactivate) == 0
}

// Load читает конфиг из файла CONFIG_PATH, а если переменная не задана — только из окружения.
func Load() (*Config, error) {
	const op = "config.Load"
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Pricing:\n"+
			"  Rounding: %s\n"+
			"Catalog:\n"+
			"  Products: %d\n"+
			"  ProductRecords: %d\n"+
			"  Users: %d\n"+
			"  Deactivate: %v\n",
		c.Env,
		c.Pricing.Rounding,
		len(c.Catalog.Products),
		len(c.Catalog.ProductRecords),
		len(c.Catalog.Users),
		c.Catalog.Deactivate,
	)
}
