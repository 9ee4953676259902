package descriptor

import "strings"

// Binding is a route's controller binding normalized from either provider
// shape: a combined "Class@method" identifier or a separate class/method
// pair. Method is empty for invokable controllers and closure routes carry
// an empty binding.
type Binding struct {
	Class  string `json:"class"`
	Method string `json:"method,omitempty"`
}

// ParseBinding splits a combined handler identifier on the first "@".
// An identifier without "@" is an invokable controller class.
func ParseBinding(action string) Binding {
	if i := strings.Index(action, "@"); i >= 0 {
		return Binding{Class: action[:i], Method: action[i+1:]}
	}
	return Binding{Class: action}
}

// Matches compares the binding against a target class and optional method.
// The method is compared only when the caller supplied one; an empty method
// argument matches any binding on the class alone.
func (b Binding) Matches(class, method string) bool {
	if b.Class == "" || b.Class != class {
		return false
	}
	return method == "" || b.Method == method
}

// IsZero reports whether the binding is empty (a closure route).
func (b Binding) IsZero() bool {
	return b.Class == ""
}

// String renders the binding in combined form.
func (b Binding) String() string {
	if b.Method == "" {
		return b.Class
	}
	return b.Class + "@" + b.Method
}
