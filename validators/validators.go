package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Colors must be 3- or 6-digit hex; the stock hexcolor rule also admits the
// 4- and 8-digit RGBA forms, and the 8-digit one would not even fit the
// 7-character color columns.
var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

func init() {
	// Report fields by their wire name, not the Go struct name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("hexcolor", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// BindJSON decodes the request body into req and runs its rule table. On any
// failure it writes a 400 response carrying per-field messages under
// data.errors and returns false, halting the pipeline before the handler.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			fail(c, map[string][]string{
				typeErr.Field: {fmt.Sprintf("The %s must be a %s.", typeErr.Field, jsonTypeName(typeErr.Type))},
			})
		} else {
			fail(c, map[string][]string{
				"body": {"The request body is malformed."},
			})
		}
		return false
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fail(c, fieldMessages(fieldErrs))
			return false
		}
		fail(c, map[string][]string{
			"body": {"The request body is malformed."},
		})
		return false
	}

	return true
}

// PathID parses the named route parameter as an id. field is the name used
// in the error mapping, which can differ from the parameter name (the item
// id is reported as menuItemId on the tag-assignment routes).
func PathID(c *gin.Context, param, field string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		fail(c, map[string][]string{
			field: {fmt.Sprintf("The %s must be an integer.", field)},
		})
		return 0, false
	}
	return uint(id), true
}

func fail(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{"data": gin.H{"errors": errs}})
}

func fieldMessages(fieldErrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", fe.Field(), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("The %s format is invalid.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

func jsonTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}
