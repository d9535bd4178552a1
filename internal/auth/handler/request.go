package handler

import (
	"encoding/json"
	"errors"

	"staff-service/internal/auth/staff"
)

var (
	errNullBody  = errors.New("request body is null")
	errFieldType = errors.New("email and password must be strings")
)

// decodeRequest reads a create-staff body.
//
// Unparseable JSON and a top-level null are errors (500). Any other
// non-object value carries no fields and decodes to an empty request,
// as does an object whose email or password is missing, null, false, 0
// or "". The service turns an empty request into the 400.
func decodeRequest(body []byte) (staff.Request, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return staff.Request{}, err
	}

	if raw == nil {
		return staff.Request{}, errNullBody
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return staff.Request{}, nil
	}

	email, password := obj["email"], obj["password"]
	if empty(email) || empty(password) {
		return staff.Request{}, nil
	}

	e, ok := email.(string)
	if !ok {
		return staff.Request{}, errFieldType
	}
	p, ok := password.(string)
	if !ok {
		return staff.Request{}, errFieldType
	}

	return staff.Request{Email: e, Password: p}, nil
}

func empty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	}
	return false
}
