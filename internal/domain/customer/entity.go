package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidFullName = errors.New("full name is required and must be at most 200 characters")
	ErrInvalidEmail    = errors.New("email must be a valid address of at most 200 characters")
	ErrInvalidPhone    = errors.New("phone must be at most 30 characters")
	ErrInvalidType     = errors.New("customer type must be ADMIN or BUYER")
)

const (
	maxFullNameLen = 200
	maxEmailLen    = 200
	maxPhoneLen    = 30
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Type string

const (
	TypeAdmin Type = "ADMIN"
	TypeBuyer Type = "BUYER"
)

func ParseType(s string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return TypeBuyer, nil
	case TypeAdmin:
		return TypeAdmin, nil
	case TypeBuyer:
		return TypeBuyer, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

type Customer struct {
	id        int64
	fullName  string
	email     string
	phone     *string
	ctype     Type
	createdAt time.Time
}

func NewCustomer(fullName, email string, phone *string, ctype string, now time.Time) (*Customer, error) {
	c := &Customer{createdAt: now}
	if err := c.apply(fullName, email, phone, ctype); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCustomer(id int64, fullName, email string, phone *string, ctype Type, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		fullName:  fullName,
		email:     email,
		phone:     phone,
		ctype:     ctype,
		createdAt: createdAt,
	}
}

// Update replaces every mutable field; createdAt and id are kept.
func (c *Customer) Update(fullName, email string, phone *string, ctype string) error {
	return c.apply(fullName, email, phone, ctype)
}

func (c *Customer) apply(fullName, email string, phone *string, ctype string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" || utf8.RuneCountInString(fullName) > maxFullNameLen {
		return ErrInvalidFullName
	}
	email = strings.TrimSpace(email)
	if utf8.RuneCountInString(email) > maxEmailLen || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	var ph *string
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		if utf8.RuneCountInString(trimmed) > maxPhoneLen {
			return ErrInvalidPhone
		}
		if trimmed != "" {
			ph = &trimmed
		}
	}
	t, err := ParseType(ctype)
	if err != nil {
		return err
	}

	c.fullName = fullName
	c.email = email
	c.phone = ph
	c.ctype = t
	return nil
}

func (c *Customer) ID() int64            { return c.id }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) Type() Type           { return c.ctype }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
