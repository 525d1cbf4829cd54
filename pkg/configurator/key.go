package configurator

import (
	"fmt"
	"reflect"
)

// ConfKey derives the flat configuration key for an option owned by the
// implementing type. The key is <TypeName>.<Group>.<OptionName>, e.g.
// "OutputFormat.WriteOpts.DefaultTableName". It is a pure string-formatting
// operation and never fails.
//
// The implementing type acts as the namespace: two types with distinct names
// can never collide, even when they configure the same option. Callers must
// use a named type; passing an anonymous or unnamed type is a usage error
// and yields an unusable namespace.
func ConfKey(implementing interface{}, opt Option) string {
	return fmt.Sprintf("%s.%s.%s", identityName(implementing), opt.Group(), opt.Name())
}

// identityName returns the bare name of the implementing type, indirecting
// through pointers. A reflect.Type may be passed directly instead of a value.
func identityName(implementing interface{}) string {
	t, ok := implementing.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(implementing)
	}
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
