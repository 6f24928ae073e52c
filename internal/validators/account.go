package validators

import (
	"strings"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
)

const minPasswordLength = 8

// Registration validates a sign-up request. The password is returned
// separately so it never sits on the user record in clear text.
func Registration(in models.RegisterInput) (models.User, string, error) {
	name := clean(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	role := domain.Role(strings.ToLower(strings.TrimSpace(in.UserType)))
	if name == "" || email == "" || in.Password == "" || role == "" {
		return models.User{}, "", domain.Invalid("", "Missing required fields")
	}
	if !validEmail(email) {
		return models.User{}, "", domain.Invalid("email", "Invalid email address")
	}
	if len(in.Password) < minPasswordLength {
		return models.User{}, "", domain.Invalid("password", "Password must be at least 8 characters long")
	}
	if !role.Valid() {
		return models.User{}, "", domain.Invalid("userType", "User type must be passenger or company")
	}
	return models.User{Name: name, Email: email, Type: role}, in.Password, nil
}

// Login validates the presence of credentials and normalizes the email.
func Login(in models.LoginInput) (models.LoginInput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return models.LoginInput{}, domain.Invalid("", "Email and password are required")
	}
	return models.LoginInput{Email: email, Password: in.Password}, nil
}

// CompanyProfile validates an operator profile update.
func CompanyProfile(in models.CompanyProfileInput) (models.CompanyProfileInput, error) {
	out := models.CompanyProfileInput{
		Name:              clean(in.Name),
		Email:             strings.ToLower(strings.TrimSpace(in.Email)),
		BusinessLicense:   strings.ToUpper(clean(in.BusinessLicense)),
		Description:       strings.TrimSpace(in.Description),
		Address:           clean(in.Address),
		OperatingRegions:  clean(in.OperatingRegions),
		InsurancePartners: clean(in.InsurancePartners),
		DiscountPrograms:  clean(in.DiscountPrograms),
	}
	if out.Name == "" || out.Email == "" {
		return out, domain.Invalid("", "Company name and email are required")
	}
	if !validEmail(out.Email) {
		return out, domain.Invalid("email", "Invalid email address")
	}
	if strings.TrimSpace(in.Phone) != "" {
		phone, ok := NormalizePhone(in.Phone)
		if !ok {
			return out, domain.Invalid("phone", "Invalid phone number format. Use: +260 XX XXXXXXX")
		}
		out.Phone = phone
	}
	return out, nil
}
