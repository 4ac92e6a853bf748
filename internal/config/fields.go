// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/models"
	"github.com/shopspring/decimal"
)

const (
	defaultPipelineStage      = "production"
	defaultSourceVersion      = "Unspecified"
	defaultPollInterval       = int64(5000)
	defaultPingInterval       = "1 minute"
	defaultPingAlertInterval  = "5 minutes"
	fieldWhisperPingEnabled   = "WHISPER_PING_ENABLED"
	fieldTxServiceAddress     = "TX_SERVICE_ADDRESS"
	fieldEnvSourceHTTPRequest = "ENV_SOURCE_HTTP"
)

// environmentFields declares every field of [models.Environment].
// Fields with a RequiredWhen dependency are resolved in a second phase, after
// all the fields they may depend on.
var environmentFields = []FieldSpec{
	// Main config
	{Name: "APP_ID", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.AppID })},
	{Name: "PG_URL", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.DBURL })},

	// Environment & version
	{Name: "NODE_ENV", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.NodeEnv })},
	{Name: "PIPELINE_STAGE", Type: Text, Default: defaultPipelineStage, assign: into(func(e *models.Environment) *string { return &e.PipelineStage })},
	{Name: "SOURCE_VERSION", Type: Text, Default: defaultSourceVersion, assign: into(func(e *models.Environment) *string { return &e.SourceVersion })},

	// Access key
	{Name: "API_KEY_SHA256", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.APIKeySHA256 })},

	// Logging
	{Name: "LOG_WHISPER_SQL", Type: Boolean, Default: false, assign: into(func(e *models.Environment) *bool { return &e.Logs.Whisper.SQL })},
	{Name: "LOG_WHISPER_PINGS", Type: Boolean, Default: false, assign: into(func(e *models.Environment) *bool { return &e.Logs.Whisper.Pings })},
	{Name: "LOG_LEVEL", Type: Text, assign: into(func(e *models.Environment) *string { return &e.Logs.Level })},

	// Attester/requester policy
	{Name: "APPROVED_ATTESTERS", Type: JSON[models.AttestationPolicy](), assign: intoPtr(func(e *models.Environment) **models.AttestationPolicy { return &e.ApprovedAttesters })},
	{Name: "APPROVED_REQUESTERS", Type: JSON[models.AttestationPolicy](), assign: intoPtr(func(e *models.Environment) **models.AttestationPolicy { return &e.ApprovedRequesters })},
	{Name: "ATTESTER_MIN_REWARDS", Type: JSON[map[string]decimal.Decimal](), Required: true, assign: into(func(e *models.Environment) *map[string]decimal.Decimal { return &e.AttesterRewards })},

	// Providers and contracts
	{Name: "PROVIDERS", Type: JSON[models.Providers](), Required: true, assign: into(func(e *models.Environment) *models.Providers { return &e.Providers })},
	{Name: "CONTRACTS", Type: JSON[models.Contracts](), Required: true, assign: into(func(e *models.Environment) *models.Contracts { return &e.Contracts })},

	// Alerting
	{Name: "SENTRY_DSN", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.SentryDSN })},

	// Response webhooks
	{Name: "WEBHOOK_KEY", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.Webhook.Key })},
	{Name: "WEBHOOK_HOST", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.Webhook.Address })},

	// Whisper
	{Name: "WHISPER_PROVIDER", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.Whisper.Provider })},
	{Name: "WHISPER_PASSWORD", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.Whisper.Password })},
	{Name: "WHISPER_TOPIC_PREFIX", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.Whisper.TopicPrefix })},
	{Name: "WHISPER_POLL_INTERVAL", Type: Integer, Default: defaultPollInterval, assign: into(func(e *models.Environment) *int64 { return &e.Whisper.PollInterval })},
	{Name: fieldWhisperPingEnabled, Type: Boolean, Default: false, assign: into(func(e *models.Environment) *bool { return &e.Whisper.Ping.Enabled })},
	{Name: "WHISPER_PING_INTERVAL", Type: Text, Default: defaultPingInterval, assign: into(func(e *models.Environment) *string { return &e.Whisper.Ping.Interval })},
	{Name: "WHISPER_PING_ALERT_INTERVAL", Type: Text, Default: defaultPingAlertInterval, assign: into(func(e *models.Environment) *string { return &e.Whisper.Ping.AlertInterval })},
	{
		Name:         "WHISPER_PING_PASSWORD",
		Type:         Text,
		RequiredWhen: &Dependency{Field: fieldWhisperPingEnabled, When: enabled},
		assign:       into(func(e *models.Environment) *string { return &e.Whisper.Ping.Password }),
	},

	// Signing key
	{Name: "PRIMARY_ETH_ADDRESS", Type: Text, Required: true, assign: into(func(e *models.Environment) *string { return &e.Owner.Address })},
	{Name: "PRIMARY_ETH_PRIVKEY", Type: Buffer, Required: true, assign: into(func(e *models.Environment) *models.HexBytes { return &e.Owner.Key })},

	// Optional log shipping
	{Name: "LOGSTASH", Type: JSON[models.Logstash](), assign: intoPtr(func(e *models.Environment) **models.Logstash { return &e.Logstash })},

	// Optional transaction service, configured only when its address is set
	{Name: fieldTxServiceAddress, Type: Text, Required: true, Gate: fieldTxServiceAddress, assign: intoTxService(func(t *models.TxService) *string { return &t.Address })},
	{Name: "TX_SERVICE_KEY", Type: Text, Required: true, Gate: fieldTxServiceAddress, assign: intoTxService(func(t *models.TxService) *string { return &t.Key })},
	{Name: "TX_SERVICE_KEY_SHA256", Type: Text, Required: true, Gate: fieldTxServiceAddress, assign: intoTxService(func(t *models.TxService) *string { return &t.WebhookKeySHA256 })},
}

// Fields returns the declarations of every environment field.
func Fields() []FieldSpec {
	return slices.Clone(environmentFields)
}

// ValidateFields checks each spec and the dependency graph: names are
// unique, dependencies and gates point at declared fields, and a dependency
// target is itself resolved in the first phase.
func ValidateFields(fields []FieldSpec) error {
	declared := make(map[string]FieldSpec, len(fields))
	var errs []error
	for _, spec := range fields {
		if err := spec.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := declared[spec.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s declared twice", errInvalidFieldSpec, spec.Name))
		}
		declared[spec.Name] = spec
	}

	for _, spec := range fields {
		if spec.Gate != "" {
			if _, ok := declared[spec.Gate]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s is gated on undeclared %s", errInvalidFieldSpec, spec.Name, spec.Gate))
			}
		}
		if spec.RequiredWhen == nil {
			continue
		}
		target, ok := declared[spec.RequiredWhen.Field]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s depends on undeclared %s", errInvalidFieldSpec, spec.Name, spec.RequiredWhen.Field))
		case target.RequiredWhen != nil:
			errs = append(errs, fmt.Errorf("%w: %s depends on dependent field %s", errInvalidFieldSpec, spec.Name, target.Name))
		}
	}

	return errors.Join(errs...)
}

// Resolution records the [Value] every field resolved to.
type Resolution struct {
	values map[string]Value
	order  []string
}

func newResolution(size int) *Resolution {
	return &Resolution{
		values: make(map[string]Value, size),
		order:  make([]string, 0, size),
	}
}

func (r *Resolution) record(name string, v Value) {
	if _, ok := r.values[name]; !ok {
		r.order = append(r.order, name)
	}
	r.values[name] = v
}

// Value returns the resolved value of the named field.
func (r *Resolution) Value(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Missing lists the required fields that resolved to [Unspecified].
func (r *Resolution) Missing() []string {
	var missing []string
	for _, name := range r.order {
		if r.values[name].IsUnspecified() {
			missing = append(missing, name)
		}
	}
	return missing
}

// Err joins one [FieldError] per missing required field, or returns nil.
func (r *Resolution) Err() error {
	var errs []error
	for _, name := range r.Missing() {
		errs = append(errs, missingField(name))
	}
	return errors.Join(errs...)
}

// resolveFields resolves fields against src in two phases and assigns every
// resolved value to a fresh Environment.
func resolveFields(src Snapshot, fields []FieldSpec, m mode, log *logger.Logger) (*models.Environment, *Resolution, error) {
	env := new(models.Environment)
	res := newResolution(len(fields))

	var dependent []FieldSpec
	for _, spec := range fields {
		if spec.RequiredWhen != nil {
			dependent = append(dependent, spec)
			continue
		}
		if err := resolveInto(env, res, src, spec, spec.Required, m, log); err != nil {
			return nil, nil, err
		}
	}

	for _, spec := range dependent {
		dep, ok := res.Value(spec.RequiredWhen.Field)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s depends on unresolved field %s", errInvalidFieldSpec, spec.Name, spec.RequiredWhen.Field)
		}
		if err := resolveInto(env, res, src, spec, spec.RequiredWhen.When(dep), m, log); err != nil {
			return nil, nil, err
		}
	}

	return env, res, nil
}

func resolveInto(env *models.Environment, res *Resolution, src Snapshot, spec FieldSpec, required bool, m mode, log *logger.Logger) error {
	if spec.Gate != "" {
		if _, open := src.Lookup(spec.Gate); !open {
			res.record(spec.Name, Value{State: Absent})
			return nil
		}
	}

	v, err := resolveField(src, spec.withRequired(required), m, log)
	if err != nil {
		return err
	}

	res.record(spec.Name, v)
	if v.hasValue() && spec.assign != nil {
		spec.assign(env, v.V)
	}

	return nil
}

// into assigns v to the field when it holds a T. A nil v resets the field to
// its zero value.
func into[T any](field func(*models.Environment) *T) func(*models.Environment, any) {
	return func(e *models.Environment, v any) {
		if v == nil {
			var zero T
			*field(e) = zero
			return
		}
		if t, ok := v.(T); ok {
			*field(e) = t
		}
	}
}

func intoPtr[T any](field func(*models.Environment) **T) func(*models.Environment, any) {
	return func(e *models.Environment, v any) {
		if v == nil {
			*field(e) = nil
			return
		}
		if t, ok := v.(T); ok {
			*field(e) = &t
		}
	}
}

// intoTxService assigns into the transaction service block, creating it on
// first use. A nil v drops the whole block.
func intoTxService(field func(*models.TxService) *string) func(*models.Environment, any) {
	return func(e *models.Environment, v any) {
		if v == nil {
			e.TxService = nil
			return
		}
		s, ok := v.(string)
		if !ok {
			return
		}
		if e.TxService == nil {
			e.TxService = new(models.TxService)
		}
		*field(e.TxService) = s
	}
}
