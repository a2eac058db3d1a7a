package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerHeader is set by the identity middleware on every authenticated request.
const OwnerHeader = "OwnerId"

var dateLayouts = []string{time.RFC3339Nano, time.DateOnly, "2006-01-02T15:04"}

func GetOwnerId(r presentationProtocols.HttpRequest) (string, *presentationProtocols.HttpResponse) {
	ownerId := strings.TrimSpace(r.Header.Get(OwnerHeader))
	if ownerId == "" {
		return "", CreateErrorResponse("ownerId is required", http.StatusBadRequest)
	}
	return ownerId, nil
}

func GetPathObjectId(r presentationProtocols.HttpRequest, name string) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue(name))
	if err != nil {
		return primitive.NilObjectID, CreateErrorResponse("invalid "+name+" format", http.StatusBadRequest)
	}
	return id, nil
}

// DecodeBody decodes the JSON body into out and runs struct validation.
func DecodeBody(r presentationProtocols.HttpRequest, validate *validator.Validate, out any) *presentationProtocols.HttpResponse {
	if r.Body == nil {
		return CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}

	if err := validate.Struct(out); err != nil {
		return CreateErrorResponse(GetErrorMessages(validate, err), http.StatusBadRequest)
	}

	return nil
}

// ParseDate accepts RFC 3339 timestamps and plain yyyy-mm-dd dates.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date: " + value)
}
