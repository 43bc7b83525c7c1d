package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/pkg/psqlbuilder"
)

const table = "outreach_settings"

// Repository репозиторий настроек правил рассылки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает настройки пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.OutreachSettings, error) {
	query, args, err := psqlbuilder.Select(
		"user_id",
		"business_hours",
		"exclude_holidays",
		"custom_holidays",
		"strict_holidays",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings       domain.OutreachSettings
		hoursJSON      []byte
		customHolidays pq.StringArray
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&settings.UserID,
		&hoursJSON,
		&settings.ExcludeHolidays,
		&customHolidays,
		&settings.StrictHolidays,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(hoursJSON, &settings.BusinessHours); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - decode business hours: %v", ErrEncode, err)
	}
	settings.CustomHolidays = []string(customHolidays)
	if settings.CustomHolidays == nil {
		settings.CustomHolidays = []string{}
	}

	return &settings, nil
}

// Upsert создает или полностью перезаписывает настройки пользователя
func (r *Repository) Upsert(ctx context.Context, settings *domain.OutreachSettings) (*domain.OutreachSettings, error) {
	hoursJSON, err := json.Marshal(settings.BusinessHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode business hours: %v", ErrEncode, err)
	}

	customHolidays := settings.CustomHolidays
	if customHolidays == nil {
		customHolidays = []string{}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"business_hours",
			"exclude_holidays",
			"custom_holidays",
			"strict_holidays",
		).
		Values(
			settings.UserID,
			hoursJSON,
			settings.ExcludeHolidays,
			pq.Array(customHolidays),
			settings.StrictHolidays,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			business_hours = EXCLUDED.business_hours,
			exclude_holidays = EXCLUDED.exclude_holidays,
			custom_holidays = EXCLUDED.custom_holidays,
			strict_holidays = EXCLUDED.strict_holidays,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	settings.CustomHolidays = customHolidays
	return settings, nil
}

// Delete удаляет настройки пользователя, после чего действуют значения по умолчанию
func (r *Repository) Delete(ctx context.Context, userID string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
