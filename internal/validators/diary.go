package validators

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary-keeper/models"
)

// MaxContentBytes bounds the size of one diary entry.
const MaxContentBytes = 1 << 20

// Field names accepted by [DiaryValidator.Validate].
const (
	FieldUserID  = "user_id"
	FieldDate    = "date"
	FieldContent = "content"
)

type DiaryValidator struct{}

func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

// Validate checks a models.StoredDiary or models.SaveDiaryRequest (value or
// pointer). With no fields given, every field the type carries is checked.
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoredDiary:
		return v.validateStoredDiary(value, fields...)
	case *models.StoredDiary:
		return v.validateStoredDiary(*value, fields...)

	case models.SaveDiaryRequest:
		return v.validateSaveRequest(value, fields...)
	case *models.SaveDiaryRequest:
		return v.validateSaveRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DiaryValidator) validateStoredDiary(diary models.StoredDiary, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDate, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			if diary.UserID <= 0 {
				err = ErrInvalidUserID
			}
		case FieldDate:
			err = validateDate(diary.Date)
		case FieldContent:
			err = validateContent(diary.Content)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *DiaryValidator) validateSaveRequest(req models.SaveDiaryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldDate:
			err = validateDate(req.Date)
		case FieldContent:
			err = validateContent(req.Content)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateDate(date string) error {
	t, err := models.ParseDate(date, time.UTC)
	if err != nil || models.FormatDate(t) != date {
		return ErrInvalidDate
	}
	return nil
}

func validateContent(content string) error {
	if len(content) > MaxContentBytes {
		return ErrContentTooLarge
	}
	if !utf8.ValidString(content) {
		return ErrInvalidEncoding
	}
	return nil
}
