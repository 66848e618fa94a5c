package handlers

import (
	"strconv"
	"time"

	"go-repairshop/internal/apperr"

	"github.com/gin-gonic/gin"
)

// The whole API takes its input from the query string, so every handler goes
// through these parsers. Absent or empty parameters are "not supplied" for
// the optional variants; supplied-but-malformed numbers are validation
// failures before anything touches the store.

const dateLayout = "2006-01-02"

func optString(c *gin.Context, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}

func optInt(c *gin.Context, name string) (*int, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperr.Validationf("%s must be an integer", name)
	}
	return &n, nil
}

func optFloat(c *gin.Context, name string) (*float64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, apperr.Validationf("%s must be a number", name)
	}
	return &f, nil
}

// optBool01 reads the 0/1 flags the API uses (is_new, is_available).
func optBool01(c *gin.Context, name string) (*bool, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperr.Validationf("%s must be 0 or 1", name)
	}
	b := n != 0
	return &b, nil
}

func optDate(c *gin.Context, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, apperr.Validationf("%s must be a date (YYYY-MM-DD)", name)
	}
	return &t, nil
}

func reqUint(c *gin.Context, name string) (uint, error) {
	v := c.Query(name)
	if v == "" {
		return 0, apperr.Validationf("%s is required", name)
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, apperr.Validationf("%s must be an integer", name)
	}
	return uint(n), nil
}

func reqInt(c *gin.Context, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, apperr.Validationf("%s is required", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Validationf("%s must be an integer", name)
	}
	return n, nil
}

func reqFloat(c *gin.Context, name string) (float64, error) {
	v := c.Query(name)
	if v == "" {
		return 0, apperr.Validationf("%s is required", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperr.Validationf("%s must be a number", name)
	}
	return f, nil
}

func reqBool01(c *gin.Context, name string) (bool, error) {
	v := c.Query(name)
	if v == "" {
		return false, apperr.Validationf("%s is required", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false, apperr.Validationf("%s must be 0 or 1", name)
	}
	return n != 0, nil
}
