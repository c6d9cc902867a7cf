package store

import (
	"lumiere/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	featureTableName     = "lumiere.features"
	serviceTableName     = "lumiere.services"
	eventTableName       = "lumiere.events"
	testimonialTableName = "lumiere.testimonials"
	memberTableName      = "lumiere.community_members"
	podcastTableName     = "lumiere.podcasts"
	videoTableName       = "lumiere.short_videos"
	galleryTableName     = "lumiere.gallery_items"
	headingTableName     = "lumiere.page_headings"
	sectionTableName     = "lumiere.content_sections"
	missionTableName     = "lumiere.mission_vision_content"
	settingTableName     = "lumiere.settings"
)

// Repositories bundles one repository per content category. Ordered
// categories list by order_index; podcasts and short videos are time-ordered,
// newest first.
type Repositories struct {
	Features     *Repository[types.Feature, *types.Feature]
	Services     *Repository[types.Service, *types.Service]
	Events       *Repository[types.Event, *types.Event]
	Testimonials *Repository[types.Testimonial, *types.Testimonial]
	Members      *Repository[types.CommunityMember, *types.CommunityMember]
	Podcasts     *Repository[types.Podcast, *types.Podcast]
	Videos       *Repository[types.ShortVideo, *types.ShortVideo]
	Gallery      *Repository[types.GalleryItem, *types.GalleryItem]

	Headings *KeyedRepository[types.PageHeading, *types.PageHeading]
	Sections *KeyedRepository[types.ContentSection, *types.ContentSection]
	Mission  *KeyedRepository[types.MissionVision, *types.MissionVision]
	Settings *KeyedRepository[types.Setting, *types.Setting]

	Forms *FormsRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Features:     NewRepository[types.Feature](pool, featureTableName, "order_index ASC"),
		Services:     NewRepository[types.Service](pool, serviceTableName, "order_index ASC"),
		Events:       NewRepository[types.Event](pool, eventTableName, "order_index ASC"),
		Testimonials: NewRepository[types.Testimonial](pool, testimonialTableName, "order_index ASC"),
		Members:      NewRepository[types.CommunityMember](pool, memberTableName, "order_index ASC"),
		Podcasts:     NewRepository[types.Podcast](pool, podcastTableName, "created_at DESC"),
		Videos:       NewRepository[types.ShortVideo](pool, videoTableName, "created_at DESC"),
		Gallery:      NewRepository[types.GalleryItem](pool, galleryTableName, "order_index ASC"),

		Headings: NewKeyedRepository[types.PageHeading](pool, headingTableName, "page_name"),
		Sections: NewKeyedRepository[types.ContentSection](pool, sectionTableName, "section_name"),
		Mission:  NewKeyedRepository[types.MissionVision](pool, missionTableName, "section_name"),
		Settings: NewKeyedRepository[types.Setting](pool, settingTableName, "setting_key"),

		Forms: NewFormsRepository(pool),
	}
}
