package config

import (
	"flag"
	"reflect"
	"strconv"
)

func setupFlags(fs *flag.FlagSet, value reflect.Value) {
	reflectConfiguration(
		value,
		func(flagName, defaultValue string) bool {
			return flagName != ""
		},
		func(fieldValue reflect.Value, flagName, defaultValue string) error {
			usage := usageStrings[flagName]
			switch fieldValue.Kind() {
			case reflect.Int64:
				intValue, err := strconv.ParseInt(defaultValue, 10, 64)
				if err != nil {
					panic(err)
				}
				fs.Int64(flagName, intValue, usage)
			case reflect.String:
				fs.String(flagName, defaultValue, usage)
			}
			return nil
		},
	)
}

func setDefaults(value reflect.Value) {
	reflectConfiguration(
		value,
		func(flagName, defaultValue string) bool {
			return defaultValue != ""
		},
		func(fieldValue reflect.Value, flagName, defaultValue string) error {
			return setField(fieldValue, defaultValue)
		},
	)
}

func setFromFlags(fs *flag.FlagSet, value reflect.Value) error {
	setFlags := make(map[string]flag.Value)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = f.Value
	})

	return reflectConfiguration(
		value,
		func(flagName, defaultValue string) bool {
			_, ok := setFlags[flagName]
			return ok
		},
		func(fieldValue reflect.Value, flagName, defaultValue string) error {
			return setField(fieldValue, setFlags[flagName].String())
		},
	)
}

func setField(fieldValue reflect.Value, s string) error {
	switch fieldValue.Kind() {
	case reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fieldValue.SetInt(n)
	case reflect.String:
		fieldValue.SetString(s)
	}
	return nil
}

// reflectConfiguration walks the tagged fields of value, descending into
// nested structs, and calls handle for each field shouldHandle accepts.
func reflectConfiguration(
	value reflect.Value,
	shouldHandle func(flagName, defaultValue string) bool,
	handle func(fieldValue reflect.Value, flagName, defaultValue string) error,
) error {
	if value.Kind() != reflect.Struct {
		return nil
	}

	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		flagName := field.Tag.Get("flag")
		defaultValue := field.Tag.Get("default")
		fieldValue := value.Field(i)

		if shouldHandle(flagName, defaultValue) {
			if err := handle(fieldValue, flagName, defaultValue); err != nil {
				return err
			}
		} else if fieldValue.Kind() == reflect.Struct {
			if err := reflectConfiguration(fieldValue, shouldHandle, handle); err != nil {
				return err
			}
		}
	}
	return nil
}
