package command

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/money"
	"github.com/sznajderm/budget-manager-sub002/internal/postgrest"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/uidate"
)

const maxDescriptionLength = 255

// TransactionCreateInput is the raw, untyped input for creating a transaction.
type TransactionCreateInput struct {
	Amount      string
	Type        string
	Date        string
	AccountID   string
	CategoryID  string
	Description string
}

// TransactionCreateCommand is a validated transaction creation request.
type TransactionCreateCommand struct {
	AmountCents int64
	Type        service.TransactionType
	Date        time.Time
	AccountID   uuid.UUID
	CategoryID  uuid.NullUUID
	Description string
}

// ParseTransactionCreate validates the raw input, collecting every failing
// field: strict dollars-and-cents amount, enumerated classification, display
// format date, UUID account reference, optional UUID category reference, and
// a non-empty description of at most 255 characters.
func ParseTransactionCreate(input TransactionCreateInput) (TransactionCreateCommand, FieldErrors) {
	var (
		errs FieldErrors
		cmd  TransactionCreateCommand
	)

	cents, err := money.ParseDollarsToCents(input.Amount)
	if err != nil {
		errs.add("amount", KindInvalidFormat, "Amount must be a positive dollar value with up to two decimal places.")
	} else {
		cmd.AmountCents = cents
	}

	txType, ok := service.ParseTransactionType(input.Type)
	if !ok {
		errs.add("type", KindInvalidFormat, "Type must be income or expense.")
	} else {
		cmd.Type = txType
	}

	date, ok := uidate.Parse(input.Date)
	if !ok {
		errs.add("date", KindInvalidFormat, "Date must be in DD/MM/YYYY HH:MM format.")
	} else {
		cmd.Date = date
	}

	cmd.AccountID, _ = parseUUIDField(&errs, "accountId", input.AccountID, true)

	if input.CategoryID != "" {
		categoryID, ok := parseUUIDField(&errs, "categoryId", input.CategoryID, false)
		if ok {
			cmd.CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}
		}
	}

	checkDescription(&errs, input.Description)
	cmd.Description = input.Description

	if len(errs) > 0 {
		return TransactionCreateCommand{}, errs
	}
	return cmd, nil
}

// TransactionUpdateInput is the raw, untyped input for a partial update.
// Nil fields are absent from the request.
type TransactionUpdateInput struct {
	Amount      *string
	Type        *string
	Date        *string
	AccountID   *string
	CategoryID  *string
	Description *string
}

// TransactionUpdateCommand is a validated partial update. Nil fields are
// left unchanged; a present but empty CategoryID clears the category.
type TransactionUpdateCommand struct {
	AmountCents *int64
	Type        *service.TransactionType
	Date        *time.Time
	AccountID   *uuid.UUID
	CategoryID  *uuid.NullUUID
	Description *string
}

// ParseTransactionUpdate validates a partial update. Each present field is
// held to the same rules as creation, and at least one field must be present.
func ParseTransactionUpdate(input TransactionUpdateInput) (TransactionUpdateCommand, FieldErrors) {
	var (
		errs FieldErrors
		cmd  TransactionUpdateCommand
	)

	present := false

	if input.Amount != nil {
		present = true
		cents, err := money.ParseDollarsToCents(*input.Amount)
		if err != nil {
			errs.add("amount", KindInvalidFormat, "Amount must be a positive dollar value with up to two decimal places.")
		} else {
			cmd.AmountCents = &cents
		}
	}

	if input.Type != nil {
		present = true
		txType, ok := service.ParseTransactionType(*input.Type)
		if !ok {
			errs.add("type", KindInvalidFormat, "Type must be income or expense.")
		} else {
			cmd.Type = &txType
		}
	}

	if input.Date != nil {
		present = true
		date, ok := uidate.Parse(*input.Date)
		if !ok {
			errs.add("date", KindInvalidFormat, "Date must be in DD/MM/YYYY HH:MM format.")
		} else {
			cmd.Date = &date
		}
	}

	if input.AccountID != nil {
		present = true
		accountID, ok := parseUUIDField(&errs, "accountId", *input.AccountID, true)
		if ok {
			cmd.AccountID = &accountID
		}
	}

	if input.CategoryID != nil {
		present = true
		if *input.CategoryID == "" {
			cmd.CategoryID = &uuid.NullUUID{}
		} else {
			categoryID, ok := parseUUIDField(&errs, "categoryId", *input.CategoryID, false)
			if ok {
				cmd.CategoryID = &uuid.NullUUID{UUID: categoryID, Valid: true}
			}
		}
	}

	if input.Description != nil {
		present = true
		checkDescription(&errs, *input.Description)
		cmd.Description = input.Description
	}

	if !present {
		errs.add("", KindRequired, "At least one field must be provided.")
	}

	if len(errs) > 0 {
		return TransactionUpdateCommand{}, errs
	}
	return cmd, nil
}

// CategoryCreateCommand is a validated category creation request.
type CategoryCreateCommand struct {
	Name string
}

// ParseCategoryCreate validates a category name: trimmed, 1-100 characters,
// not whitespace-only.
func ParseCategoryCreate(name string) (CategoryCreateCommand, FieldErrors) {
	var errs FieldErrors

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs.add("name", KindRequired, "Name must not be empty.")
	} else if utf8.RuneCountInString(trimmed) > 100 {
		errs.add("name", KindTooLong, "Name must be at most 100 characters.")
	}

	if len(errs) > 0 {
		return CategoryCreateCommand{}, errs
	}
	return CategoryCreateCommand{Name: trimmed}, nil
}

// SummaryCommand is a validated summary request: one classification over an
// inclusive date range.
type SummaryCommand struct {
	Type  service.TransactionType
	Start time.Time
	End   time.Time
}

// ParseSummary validates a summary request. Dates use the YYYY-MM-DD form;
// the end date is inclusive through its last instant.
func ParseSummary(txType, startDate, endDate string) (SummaryCommand, FieldErrors) {
	var (
		errs FieldErrors
		cmd  SummaryCommand
	)

	parsedType, ok := service.ParseTransactionType(txType)
	if !ok {
		errs.add("transaction_type", KindInvalidFormat, "Type must be income or expense.")
	} else {
		cmd.Type = parsedType
	}

	start, startErr := time.ParseInLocation("2006-01-02", startDate, time.UTC)
	if startErr != nil {
		errs.add("start_date", KindInvalidFormat, "Start date must be in YYYY-MM-DD format.")
	} else {
		cmd.Start = start
	}

	end, endErr := time.ParseInLocation("2006-01-02", endDate, time.UTC)
	if endErr != nil {
		errs.add("end_date", KindInvalidFormat, "End date must be in YYYY-MM-DD format.")
	} else {
		cmd.End = end.Add(24*time.Hour - time.Nanosecond)
	}

	if startErr == nil && endErr == nil && start.After(end) {
		errs.add("end_date", KindOutOfRange, "End date must not be before start date.")
	}

	if len(errs) > 0 {
		return SummaryCommand{}, errs
	}
	return cmd, nil
}

func parseUUIDField(errs *FieldErrors, field, value string, required bool) (uuid.UUID, bool) {
	if value == "" {
		if required {
			errs.add(field, KindRequired, "Identifier is required.")
		}
		return uuid.Nil, false
	}
	if !postgrest.IsUUID(value) {
		errs.add(field, KindInvalidFormat, "Identifier must be a valid UUID.")
		return uuid.Nil, false
	}
	parsed, err := uuid.FromString(value)
	if err != nil {
		errs.add(field, KindInvalidFormat, "Identifier must be a valid UUID.")
		return uuid.Nil, false
	}
	return parsed, true
}

func checkDescription(errs *FieldErrors, description string) {
	if description == "" {
		errs.add("description", KindRequired, "Description must not be empty.")
	} else if utf8.RuneCountInString(description) > maxDescriptionLength {
		errs.add("description", KindTooLong, "Description must be at most 255 characters.")
	}
}
