package tzselect

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// attributeValue reads method from object. Maps are indexed by key; structs
// expose the value through a niladic method or an exported field matched by
// Go name, case-insensitive name, or json tag. A nil object has no value.
func attributeValue(object any, method string) (any, error) {
	if object == nil {
		return nil, nil
	}

	switch data := object.(type) {
	case map[string]any:
		return data[method], nil
	case map[string]string:
		return data[method], nil
	}

	goName := camelize(method)

	value := reflect.ValueOf(object)
	if value.Kind() == reflect.Pointer && value.IsNil() {
		return nil, nil
	}
	if fn := value.MethodByName(goName); fn.IsValid() {
		if fn.Type().NumIn() == 0 && fn.Type().NumOut() >= 1 {
			return unwrap(fn.Call(nil)[0]), nil
		}
	}

	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		typ := value.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			if field.Name == goName || strings.EqualFold(field.Name, method) || jsonName(field) == method {
				return unwrap(value.Field(i)), nil
			}
		}
	case reflect.Map:
		if value.Type().Key().Kind() == reflect.String {
			entry := value.MapIndex(reflect.ValueOf(method).Convert(value.Type().Key()))
			if !entry.IsValid() {
				return nil, nil
			}
			return unwrap(entry), nil
		}
	}

	return nil, fmt.Errorf("tzselect: %T has no attribute %q", object, method)
}

// unwrap dereferences string pointers so optional model fields normalise.
func unwrap(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.String {
		if v.IsNil() {
			return nil
		}
		return v.Elem().String()
	}
	if v.Kind() == reflect.String {
		return v.String()
	}
	return v.Interface()
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// camelize maps "time_zone" to "TimeZone".
func camelize(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
