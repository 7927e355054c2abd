package httpserver

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Clark-Hu/theater-movies/internal/pagination"
)

const msgIntParsing = "Input should be a valid integer, unable to parse string as an integer"

// validationIssue mirrors one entry of a FastAPI-style 422 body so existing
// clients keep parsing errors the same way.
type validationIssue struct {
	Type  string         `json:"type"`
	Loc   []string       `json:"loc"`
	Msg   string         `json:"msg"`
	Input any            `json:"input"`
	Ctx   map[string]int `json:"ctx,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// parseListQuery reads page/per_page, applying defaults for absent values.
func parseListQuery(query url.Values) (pagination.Request, []validationIssue) {
	req := pagination.DefaultRequest()
	raw := map[string]string{}
	failed := map[string]bool{}
	var issues []validationIssue

	parseInt := func(name string, dst *int) {
		if !query.Has(name) {
			return
		}
		val := strings.TrimSpace(query.Get(name))
		raw[name] = val
		parsed, err := strconv.Atoi(val)
		if err != nil {
			failed[name] = true
			issues = append(issues, intParsingIssue("query", name, val))
			return
		}
		*dst = parsed
	}
	parseInt("page", &req.Page)
	parseInt("per_page", &req.PerPage)

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return req, append(issues, validationIssue{Type: "value_error", Loc: []string{"query"}, Msg: err.Error()})
		}
		for _, fe := range verrs {
			if failed[fe.Field()] {
				continue
			}
			input, ok := raw[fe.Field()]
			if !ok {
				input = strconv.Itoa(fe.Value().(int))
			}
			issues = append(issues, boundIssue(fe, input))
		}
	}
	return req, issues
}

func parseMovieID(raw string) (int64, []validationIssue) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, []validationIssue{intParsingIssue("path", "movie_id", raw)}
	}
	return id, nil
}

func intParsingIssue(location, name, input string) validationIssue {
	return validationIssue{
		Type:  "int_parsing",
		Loc:   []string{location, name},
		Msg:   msgIntParsing,
		Input: input,
	}
}

func boundIssue(fe validator.FieldError, input string) validationIssue {
	limit, _ := strconv.Atoi(fe.Param())
	issue := validationIssue{
		Loc:   []string{"query", fe.Field()},
		Input: input,
	}
	switch fe.Tag() {
	case "gte":
		issue.Type = "greater_than_equal"
		issue.Msg = "Input should be greater than or equal to " + fe.Param()
		issue.Ctx = map[string]int{"ge": limit}
	case "lte":
		issue.Type = "less_than_equal"
		issue.Msg = "Input should be less than or equal to " + fe.Param()
		issue.Ctx = map[string]int{"le": limit}
	default:
		issue.Type = "value_error"
		issue.Msg = fe.Field() + " failed on " + fe.Tag()
	}
	return issue
}
