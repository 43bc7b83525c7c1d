package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Priority приоритет постановки лидов в очередь
type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityNormal    Priority = "normal"
	PriorityHigh      Priority = "high"
	PriorityImmediate Priority = "immediate"
)

// ParsePriority парсит приоритет, пустая строка означает normal
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PriorityNormal, nil
	}
	if !p.IsValid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// IsValid returns true for known priorities
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityImmediate:
		return true
	default:
		return false
	}
}

// IsImmediate returns true if all leads of a batch share one slot
func (p Priority) IsImmediate() bool {
	return p == PriorityImmediate
}

// QueueOperation пакет лидов, который вызывающая сторона хочет поставить в очередь
type QueueOperation struct {
	LeadIDs      []string
	ScheduledFor *time.Time // nil = сейчас
	Priority     Priority
}

// ValidationResult результат проверки бизнес-правил
// Reason заполнен тогда и только тогда, когда Allowed = false
type ValidationResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func Allow() ValidationResult {
	return ValidationResult{Allowed: true}
}

func AllowWithWarning(warning string) ValidationResult {
	return ValidationResult{Allowed: true, Warning: warning}
}

func Deny(reason string) ValidationResult {
	return ValidationResult{Allowed: false, Reason: reason}
}

// CapacityLimits ограничения размера пакета
type CapacityLimits struct {
	MaxBatchSize     int // жесткий лимит, больше - отказ
	WarningThreshold int // больше - разрешено с предупреждением
}

// NewCapacityLimits вычисляет порог предупреждения как долю от MaxBatchSize
func NewCapacityLimits(maxBatchSize int, warningRatio float64) CapacityLimits {
	return CapacityLimits{
		MaxBatchSize:     maxBatchSize,
		WarningThreshold: int(math.Round(float64(maxBatchSize) * warningRatio)),
	}
}

// DefaultCapacityLimits: 100 лидов, предупреждение после 80
func DefaultCapacityLimits() CapacityLimits {
	return NewCapacityLimits(DefaultMaxBatchSize, DefaultLargeBatchWarningRatio)
}
