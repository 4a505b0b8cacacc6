package loadout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// loadoutRecord is the table row. The allocation is kept as a JSON document.
type loadoutRecord struct {
	ID          string         `gorm:"primaryKey;size:64"`
	DraftID     string         `gorm:"size:64;index:idx_loadout_draft"`
	Name        string         `gorm:"size:127"`
	Mass        float64        `gorm:"not null"`
	ArmorTypeID string         `gorm:"size:64"`
	Tonnage     float64        `gorm:"not null"`
	TotalArmor  int            `gorm:"not null"`
	Allocation  datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"index:idx_loadout_created"`
}

func (loadoutRecord) TableName() string {
	return "armor_loadouts"
}

// Open connects to the configured database the way the server does at startup
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	default:
		return nil, errors.InvalidArgumentf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open database")
	}
	return db, nil
}

type gormRepository struct {
	db *gorm.DB
}

// GormConfig contains configuration for the gorm loadout repository
type GormConfig struct {
	DB *gorm.DB
}

// Validate validates the GormConfig
func (cfg *GormConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewGorm creates a loadout repository and migrates its table
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.DB.AutoMigrate(&loadoutRecord{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate loadout table")
	}

	return &gormRepository{db: cfg.DB}, nil
}

func (r *gormRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Loadout == nil {
		return nil, errors.InvalidArgument("loadout cannot be nil")
	}
	if input.Loadout.ID == "" {
		return nil, errors.InvalidArgument("loadout ID cannot be empty")
	}

	record, err := toRecord(input.Loadout)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout %s", input.Loadout.ID)
	}

	return &SaveOutput{Loadout: input.Loadout}, nil
}

func (r *gormRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("loadout ID cannot be empty")
	}

	var record loadoutRecord
	err := r.db.WithContext(ctx).Where("id = ?", input.ID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFoundf("loadout %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get loadout %s", input.ID)
	}

	loadout, err := fromRecord(&record)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Loadout: loadout}, nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	query := r.db.WithContext(ctx).Order("created_at desc").Order("id")
	if input.DraftID != "" {
		query = query.Where("draft_id = ?", input.DraftID)
	}
	if input.Limit > 0 {
		query = query.Limit(input.Limit)
	}

	var records []loadoutRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list loadouts")
	}

	loadouts := make([]*mech.Loadout, 0, len(records))
	for i := range records {
		loadout, err := fromRecord(&records[i])
		if err != nil {
			return nil, err
		}
		loadouts = append(loadouts, loadout)
	}

	return &ListOutput{Loadouts: loadouts}, nil
}

func toRecord(l *mech.Loadout) (*loadoutRecord, error) {
	alloc, err := json.Marshal(l.Allocation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode allocation")
	}

	return &loadoutRecord{
		ID:          l.ID,
		DraftID:     l.DraftID,
		Name:        l.Name,
		Mass:        l.Mass,
		ArmorTypeID: l.ArmorTypeID,
		Tonnage:     l.Tonnage,
		TotalArmor:  l.TotalArmor,
		Allocation:  datatypes.JSON(alloc),
		CreatedAt:   time.Unix(l.CreatedAt, 0).UTC(),
	}, nil
}

func fromRecord(r *loadoutRecord) (*mech.Loadout, error) {
	alloc := mech.NewAllocation()
	if len(r.Allocation) > 0 {
		if err := json.Unmarshal(r.Allocation, &alloc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode allocation of loadout %s", r.ID)
		}
	}

	return &mech.Loadout{
		ID:          r.ID,
		DraftID:     r.DraftID,
		Name:        r.Name,
		Mass:        r.Mass,
		ArmorTypeID: r.ArmorTypeID,
		Tonnage:     r.Tonnage,
		Allocation:  alloc,
		TotalArmor:  r.TotalArmor,
		CreatedAt:   r.CreatedAt.Unix(),
	}, nil
}
