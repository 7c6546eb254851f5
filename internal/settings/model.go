// Package settings holds the storefront settings model and its key-value persistence.
package settings

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Setting keys.
const (
	KeyStoreName             = "store_name"
	KeyLogoPath              = "logo_path"
	KeyContactPhone          = "contact_phone"
	KeyAddress               = "address"
	KeyCurrency              = "currency"
	KeyDefaultFrequency      = "default_frequency"
	KeyInstallmentFee        = "installment_fee"
	KeyLowStockAlerts        = "low_stock_alerts"
	KeyLowStockThreshold     = "low_stock_threshold"
	KeyBarcodeEnabled        = "barcode_enabled"
	KeyDefaultReportPeriod   = "default_report_period"
	KeyShowOutstandingMetric = "show_outstanding_metric"
	KeyShowSalesTrend        = "show_sales_trend"
	KeyAutoLockMinutes       = "auto_lock_minutes"
	KeyRequirePINForRefunds  = "require_pin_for_refunds"
	KeyNotifyUpcomingDue     = "notify_upcoming_due"
	KeyNotifyLowStock        = "notify_low_stock"
	KeyAutoBackupDaily       = "auto_backup_daily"
	KeyBackupDir             = "backup_dir"
	KeyLanguage              = "language"
	KeyTheme                 = "theme"
	KeyDateFormat            = "date_format"
	KeyStartupPage           = "startup_page"
)

// Model is one coherent snapshot of all storefront settings.
// It is a plain value: copies never share state.
type Model struct {
	// General
	StoreName    string `validate:"max=200"`
	LogoPath     string `validate:"max=1024"`
	ContactPhone string `validate:"max=64"`
	Address      string `validate:"max=500"`

	// Finance
	Currency         string  `validate:"required"`
	DefaultFrequency string  `validate:"required"`
	InstallmentFee   float64 `validate:"gte=0,lte=1000000"`

	// Inventory
	LowStockAlerts    bool
	LowStockThreshold int `validate:"gte=0,lte=100000"`
	BarcodeEnabled    bool

	// Reports
	DefaultReportPeriod   string `validate:"required"`
	ShowOutstandingMetric bool
	ShowSalesTrend        bool

	// Security
	AutoLockMinutes      int `validate:"gte=0,lte=120"`
	RequirePINForRefunds bool

	// Notifications
	NotifyUpcomingDue bool
	NotifyLowStock    bool

	// Backup
	AutoBackupDaily bool
	BackupDir       string `validate:"max=1024"`

	// UI
	Language    string `validate:"required"`
	Theme       string `validate:"required"`
	DateFormat  string `validate:"required"`
	StartupPage string `validate:"required"`
}

// Field describes one settings key with its declared type and default.
type Field struct {
	Key     string
	Type    FieldType
	Default Value
}

// Entry is one (key, current value, declared type) triple of a model.
type Entry struct {
	Key   string
	Type  FieldType
	Value Value
}

// fieldRef binds a key to the model member holding its value.
type fieldRef struct {
	key  string
	typ  FieldType
	text func(*Model) *string
	num  func(*Model) *int
	flt  func(*Model) *float64
	flag func(*Model) *bool
}

var validate = validator.New()

// refs is the fixed field table in declaration order.
var refs = []fieldRef{
	{key: KeyStoreName, typ: Text, text: func(m *Model) *string { return &m.StoreName }},
	{key: KeyLogoPath, typ: Text, text: func(m *Model) *string { return &m.LogoPath }},
	{key: KeyContactPhone, typ: Text, text: func(m *Model) *string { return &m.ContactPhone }},
	{key: KeyAddress, typ: Text, text: func(m *Model) *string { return &m.Address }},
	{key: KeyCurrency, typ: Text, text: func(m *Model) *string { return &m.Currency }},
	{key: KeyDefaultFrequency, typ: Text, text: func(m *Model) *string { return &m.DefaultFrequency }},
	{key: KeyInstallmentFee, typ: Float, flt: func(m *Model) *float64 { return &m.InstallmentFee }},
	{key: KeyLowStockAlerts, typ: Boolean, flag: func(m *Model) *bool { return &m.LowStockAlerts }},
	{key: KeyLowStockThreshold, typ: Integer, num: func(m *Model) *int { return &m.LowStockThreshold }},
	{key: KeyBarcodeEnabled, typ: Boolean, flag: func(m *Model) *bool { return &m.BarcodeEnabled }},
	{key: KeyDefaultReportPeriod, typ: Text, text: func(m *Model) *string { return &m.DefaultReportPeriod }},
	{key: KeyShowOutstandingMetric, typ: Boolean, flag: func(m *Model) *bool { return &m.ShowOutstandingMetric }},
	{key: KeyShowSalesTrend, typ: Boolean, flag: func(m *Model) *bool { return &m.ShowSalesTrend }},
	{key: KeyAutoLockMinutes, typ: Integer, num: func(m *Model) *int { return &m.AutoLockMinutes }},
	{key: KeyRequirePINForRefunds, typ: Boolean, flag: func(m *Model) *bool { return &m.RequirePINForRefunds }},
	{key: KeyNotifyUpcomingDue, typ: Boolean, flag: func(m *Model) *bool { return &m.NotifyUpcomingDue }},
	{key: KeyNotifyLowStock, typ: Boolean, flag: func(m *Model) *bool { return &m.NotifyLowStock }},
	{key: KeyAutoBackupDaily, typ: Boolean, flag: func(m *Model) *bool { return &m.AutoBackupDaily }},
	{key: KeyBackupDir, typ: Text, text: func(m *Model) *string { return &m.BackupDir }},
	{key: KeyLanguage, typ: Text, text: func(m *Model) *string { return &m.Language }},
	{key: KeyTheme, typ: Text, text: func(m *Model) *string { return &m.Theme }},
	{key: KeyDateFormat, typ: Text, text: func(m *Model) *string { return &m.DateFormat }},
	{key: KeyStartupPage, typ: Text, text: func(m *Model) *string { return &m.StartupPage }},
}

var refIndex = func() map[string]int {
	idx := make(map[string]int, len(refs))
	for i, r := range refs {
		idx[r.key] = i
	}

	return idx
}()

// Default returns a model with every field at its fixed default.
func Default() Model {
	return Model{
		StoreName:             "My Store",
		Currency:              "USD",
		DefaultFrequency:      "Monthly",
		InstallmentFee:        15.0,
		LowStockAlerts:        true,
		LowStockThreshold:     5,
		DefaultReportPeriod:   "Monthly",
		ShowOutstandingMetric: true,
		ShowSalesTrend:        true,
		AutoLockMinutes:       10,
		RequirePINForRefunds:  true,
		NotifyUpcomingDue:     true,
		NotifyLowStock:        true,
		AutoBackupDaily:       true,
		Language:              "English",
		Theme:                 "System",
		DateFormat:            "DD/MM/YYYY",
		StartupPage:           "Dashboard",
	}
}

// Fields returns the fixed field table with defaults, in declaration order.
func Fields() []Field {
	def := Default()
	out := make([]Field, len(refs))

	for i, r := range refs {
		out[i] = Field{Key: r.key, Type: r.typ, Default: r.get(&def)}
	}

	return out
}

// Lookup returns the field description of key.
func Lookup(key string) (Field, bool) {
	i, ok := refIndex[key]
	if !ok {
		return Field{}, false
	}

	def := Default()

	return Field{Key: key, Type: refs[i].typ, Default: refs[i].get(&def)}, true
}

// Entries enumerates the model as (key, value, type) triples in declaration order.
func (m Model) Entries() []Entry {
	out := make([]Entry, len(refs))
	for i, r := range refs {
		out[i] = Entry{Key: r.key, Type: r.typ, Value: r.get(&m)}
	}

	return out
}

// Value returns the current value of key.
func (m Model) Value(key string) (Value, bool) {
	i, ok := refIndex[key]
	if !ok {
		return Value{}, false
	}

	return refs[i].get(&m), true
}

// With returns a copy of m with the field key replaced by v.
func (m Model) With(key string, v Value) (Model, error) {
	i, ok := refIndex[key]
	if !ok {
		return m, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	r := refs[i]
	if r.typ != v.Type {
		return m, fmt.Errorf("%w: %s is %s, got %s", ErrTypeMismatch, key, r.typ, v.Type)
	}

	r.set(&m, v)

	return m, nil
}

// Validate checks the range constraints of the model.
func (m Model) Validate() error {
	return validate.Struct(m)
}

func (r fieldRef) get(m *Model) Value {
	switch r.typ {
	case Integer:
		return IntValue(*r.num(m))
	case Float:
		return FloatValue(*r.flt(m))
	case Boolean:
		return BoolValue(*r.flag(m))
	default:
		return TextValue(*r.text(m))
	}
}

func (r fieldRef) set(m *Model, v Value) {
	switch r.typ {
	case Integer:
		*r.num(m) = v.Int
	case Float:
		*r.flt(m) = v.Float
	case Boolean:
		*r.flag(m) = v.Bool
	default:
		*r.text(m) = v.Text
	}
}
