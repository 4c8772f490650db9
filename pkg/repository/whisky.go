package repository

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/WhiskyReview/pkg/catalog"
	"droscher.com/WhiskyReview/pkg/model"
)

var ErrWhiskyNotFound = errors.New("whisky not found")

type WhiskyRepository interface { //nolint:interfacebloat // one repository backs both the catalog and the admin panel
	CountTop5(ctx context.Context) (int64, error)
	CountWhiskies(ctx context.Context, whiskyQuery WhiskyQuery) (int64, error)
	DeleteWhisky(ctx context.Context, whiskyID uuid.UUID) error
	FindWhiskies(ctx context.Context, whiskyQuery WhiskyQuery, sort catalog.Sort, offset int, limit int) ([]*model.Whisky, error)
	FindWhiskyIDsByFlavorTags(ctx context.Context, flavorTagIDs []uint) ([]uuid.UUID, error)
	GetWhiskyByID(ctx context.Context, whiskyID uuid.UUID) (*model.Whisky, error)
	SaveWhisky(ctx context.Context, whisky model.Whisky, flavorTagIDs []uint) (*model.Whisky, error)
	SetTop5(ctx context.Context, whiskyID uuid.UUID, top5 bool) error
	SetWeeklyPick(ctx context.Context, whiskyID uuid.UUID) error
}

// WhiskyQuery is the predicate shared by the count and the row fetch of a
// catalog page. A nil WhiskyIDs means no restriction, an empty one matches
// nothing.
type WhiskyQuery struct {
	Filter         catalog.Filter
	WhiskyIDs      []uuid.UUID
	WeeklyPickOnly bool
	Top5Only       bool
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

//nolint:cyclop // one branch per filter field
func applyWhiskyQuery(query *gorm.DB, whiskyQuery WhiskyQuery) *gorm.DB {
	filter := whiskyQuery.Filter

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		query = query.Where("(whiskies.name ILIKE ? OR whiskies.distillery ILIKE ?)", pattern, pattern)
	}

	if len(filter.Origins) > 0 {
		query = query.Where("whiskies.origin_id IN ?", filter.Origins)
	}

	if len(filter.Regions) > 0 {
		query = query.Where("whiskies.region_id IN ?", filter.Regions)
	}

	if len(filter.Types) > 0 {
		query = query.Where("whiskies.type_id IN ?", filter.Types)
	}

	if len(filter.PriceRanges) > 0 {
		query = query.Where("whiskies.price_range IN ?", filter.PriceRanges)
	}

	if filter.MinRating != nil {
		query = query.Where("whiskies.overall_rating >= ?", *filter.MinRating)
	}

	if filter.MaxRating != nil {
		query = query.Where("whiskies.overall_rating <= ?", *filter.MaxRating)
	}

	if filter.AbvMin != nil {
		query = query.Where("whiskies.abv >= ?", *filter.AbvMin)
	}

	if filter.AbvMax != nil {
		query = query.Where("whiskies.abv <= ?", *filter.AbvMax)
	}

	if whiskyQuery.WhiskyIDs != nil {
		query = query.Where("whiskies.id IN ?", whiskyQuery.WhiskyIDs)
	}

	if whiskyQuery.WeeklyPickOnly {
		query = query.Where("whiskies.is_whisky_of_week = ?", true)
	}

	if whiskyQuery.Top5Only {
		query = query.Where("whiskies.is_top_5 = ?", true)
	}

	return query
}

func (r *Repository) CountWhiskies(ctx context.Context, whiskyQuery WhiskyQuery) (int64, error) {
	var total int64

	query := applyWhiskyQuery(r.DB.WithContext(ctx).Model(&model.Whisky{}), whiskyQuery)
	if result := query.Count(&total); result.Error != nil {
		r.Logger.Error("error counting whiskies", zap.Error(result.Error))

		return 0, result.Error
	}

	return total, nil
}

// FindWhiskies returns one page of whiskies with origin, region and type
// joined in. A non-positive limit returns every match.
func (r *Repository) FindWhiskies(ctx context.Context, whiskyQuery WhiskyQuery, sort catalog.Sort, offset int, limit int) ([]*model.Whisky, error) {
	var whiskies []*model.Whisky

	sort = sort.OrDefault()

	query := r.DB.WithContext(ctx).
		Joins("Origin").
		Joins("Region").
		Joins("Type")
	query = applyWhiskyQuery(query, whiskyQuery).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Table: "whiskies", Name: string(sort.Field)}, Desc: sort.Descending()},
			{Column: clause.Column{Table: "whiskies", Name: "id"}},
		}})

	if offset > 0 {
		query = query.Offset(offset)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&whiskies); result.Error != nil {
		r.Logger.Error("error finding whiskies", zap.Error(result.Error))

		return nil, result.Error
	}

	return whiskies, nil
}

// FindWhiskyIDsByFlavorTags returns the whiskies carrying any of the tags.
func (r *Repository) FindWhiskyIDsByFlavorTags(ctx context.Context, flavorTagIDs []uint) ([]uuid.UUID, error) {
	whiskyIDs := []uuid.UUID{}

	if len(flavorTagIDs) == 0 {
		return whiskyIDs, nil
	}

	result := r.DB.WithContext(ctx).Model(&model.WhiskyFlavorTag{}).
		Where("flavor_tag_id IN ?", flavorTagIDs).
		Distinct("whisky_id").
		Pluck("whisky_id", &whiskyIDs)
	if result.Error != nil {
		return nil, result.Error
	}

	return whiskyIDs, nil
}

func (r *Repository) GetWhiskyByID(ctx context.Context, whiskyID uuid.UUID) (*model.Whisky, error) {
	var whisky model.Whisky

	result := r.DB.WithContext(ctx).
		Joins("Origin").
		Joins("Region").
		Joins("Type").
		Where("whiskies.id = ?", whiskyID).
		First(&whisky)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWhiskyNotFound
		}

		return nil, result.Error
	}

	return &whisky, nil
}

// SaveWhisky inserts the whisky when it has no id yet and overwrites it
// otherwise. Its flavor tags are replaced by flavorTagIDs and, when it is the
// weekly pick, the flag is cleared on every other row. All of it happens in
// one transaction.
func (r *Repository) SaveWhisky(ctx context.Context, whisky model.Whisky, flavorTagIDs []uint) (*model.Whisky, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveWhiskyRow(tx, &whisky); err != nil {
			return err
		}

		if err := replaceFlavorTags(tx, whisky.ID, flavorTagIDs); err != nil {
			return err
		}

		if whisky.IsWhiskyOfWeek {
			return clearWeeklyPick(tx, whisky.ID)
		}

		return nil
	})
	if err != nil {
		r.Logger.Error("error saving whisky", zap.Stringer("whisky_id", whisky.ID), zap.Error(err))

		return nil, err
	}

	return &whisky, nil
}

func saveWhiskyRow(tx *gorm.DB, whisky *model.Whisky) error {
	if whisky.ID == uuid.Nil {
		whisky.ID = uuid.New()

		return tx.Omit(clause.Associations).Create(whisky).Error
	}

	result := tx.Model(whisky).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(whisky)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrWhiskyNotFound
	}

	return nil
}

func replaceFlavorTags(tx *gorm.DB, whiskyID uuid.UUID, flavorTagIDs []uint) error {
	if result := tx.Where("whisky_id = ?", whiskyID).Delete(&model.WhiskyFlavorTag{}); result.Error != nil {
		return result.Error
	}

	tagIDs := slices.Clone(flavorTagIDs)
	slices.Sort(tagIDs)
	tagIDs = slices.Compact(tagIDs)

	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]model.WhiskyFlavorTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, model.WhiskyFlavorTag{WhiskyID: whiskyID, FlavorTagID: tagID})
	}

	return tx.Omit(clause.Associations).Create(&links).Error
}

func clearWeeklyPick(tx *gorm.DB, keepID uuid.UUID) error {
	return tx.Model(&model.Whisky{}).
		Where("id <> ? AND is_whisky_of_week = ?", keepID, true).
		Update("is_whisky_of_week", false).Error
}

// DeleteWhisky removes the whisky and its flavor tag links.
func (r *Repository) DeleteWhisky(ctx context.Context, whiskyID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("whisky_id = ?", whiskyID).Delete(&model.WhiskyFlavorTag{}); result.Error != nil {
			return result.Error
		}

		result := tx.Where("id = ?", whiskyID).Delete(&model.Whisky{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrWhiskyNotFound
		}

		return nil
	})
}

// SetWeeklyPick makes whiskyID the only weekly pick.
func (r *Repository) SetWeeklyPick(ctx context.Context, whiskyID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Whisky{}).
			Where("id = ?", whiskyID).
			Update("is_whisky_of_week", true)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrWhiskyNotFound
		}

		return clearWeeklyPick(tx, whiskyID)
	})
}

func (r *Repository) SetTop5(ctx context.Context, whiskyID uuid.UUID, top5 bool) error {
	result := r.DB.WithContext(ctx).Model(&model.Whisky{}).
		Where("id = ?", whiskyID).
		Update("is_top_5", top5)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrWhiskyNotFound
	}

	return nil
}

func (r *Repository) CountTop5(ctx context.Context) (int64, error) {
	var total int64

	result := r.DB.WithContext(ctx).Model(&model.Whisky{}).
		Where("is_top_5 = ?", true).
		Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
