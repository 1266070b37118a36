package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// processStructFields walks through struct fields to override config with env vars
func processStructFields(s interface{}) error {
	val := reflect.ValueOf(s)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Nested sections are walked recursively
		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if err := setField(field, fieldType.Name, envValue); err != nil {
			return err
		}
	}

	return nil
}

// setField assigns an environment value to a config field based on its type
func setField(field reflect.Value, name, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("cannot set config field %s", name)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %w", name, err)
		}
		field.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %w", name, err)
		}
		field.SetBool(boolValue)
	case reflect.Slice:
		// Comma-separated lists, e.g. CORS_ALLOWED_ORIGINS
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type for config field %s", name)
		}
		parts := strings.Split(value, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				values = append(values, trimmed)
			}
		}
		field.Set(reflect.ValueOf(values))
	default:
		return fmt.Errorf("unsupported type for config field %s", name)
	}

	return nil
}
