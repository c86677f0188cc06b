package apidocs

import (
	"net/url"
	"strings"

	"github.com/go-openapi/spec"

	"github.com/janisto/echo-apidocs/internal/platform/config"
)

// APIInfo is the metadata published in the info section of the API description.
type APIInfo struct {
	Title          string `json:"title"                    cbor:"title"                    example:"Microservice API"`
	Description    string `json:"description,omitempty"    cbor:"description,omitempty"    example:"APIs for this microservice"`
	TermsOfService string `json:"termsOfService,omitempty" cbor:"termsOfService,omitempty" example:"Defined by 4finance internal licences"`
	Contact        string `json:"contact,omitempty"        cbor:"contact,omitempty"        example:"info@4finance.com"`
	LicenseType    string `json:"licenseType,omitempty"    cbor:"licenseType,omitempty"    example:"4finance internal licence"`
	LicenseURL     string `json:"licenseUrl,omitempty"     cbor:"licenseUrl,omitempty"     example:"http://4finance.com"`
}

// NewAPIInfo builds the metadata record from the rest.api.* configuration keys.
func NewAPIInfo(cfg config.Config) APIInfo {
	return APIInfo{
		Title:          cfg.API.Title,
		Description:    cfg.API.Description,
		TermsOfService: cfg.API.Terms,
		Contact:        cfg.API.Contact,
		LicenseType:    cfg.API.LicenseType,
		LicenseURL:     cfg.API.LicenseURL,
	}
}

// apply overwrites the info section of doc with the metadata and version.
func (i APIInfo) apply(doc *spec.Swagger, version string) {
	if doc.Info == nil {
		doc.Info = &spec.Info{}
	}
	doc.Info.Title = i.Title
	doc.Info.Description = i.Description
	doc.Info.TermsOfService = i.TermsOfService
	doc.Info.Version = version
	doc.Info.Contact = contactInfo(i.Contact)
	doc.Info.License = nil
	if i.LicenseType != "" || i.LicenseURL != "" {
		doc.Info.License = &spec.License{LicenseProps: spec.LicenseProps{
			Name: i.LicenseType,
			URL:  i.LicenseURL,
		}}
	}
}

// contactInfo maps a free-text contact onto the structured contact object:
// e-mail addresses go to email, absolute http(s) URLs to url, anything else to name.
func contactInfo(contact string) *spec.ContactInfo {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil
	}

	var props spec.ContactInfoProps
	switch {
	case isHTTPURL(contact):
		props.URL = contact
	case strings.Contains(contact, "@"):
		props.Email = contact
	default:
		props.Name = contact
	}
	return &spec.ContactInfo{ContactInfoProps: props}
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
