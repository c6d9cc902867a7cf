package types

// PageHeading overrides the hardcoded heading copy of one public section,
// keyed by page name ("services", "events", "community", ...).
type PageHeading struct {
	Meta
	PageName    string  `db:"page_name" form:"pageName" validate:"required"`
	Title       string  `db:"title" form:"title" validate:"required"`
	Description string  `db:"description" form:"description"`
	Tag         *string `db:"tag" form:"tag"`
}

// ContentSection is free-form override copy for a named section of the page,
// for blocks that carry more than a heading (e.g. the community CTA).
type ContentSection struct {
	Meta
	SectionName string `db:"section_name" form:"sectionName" validate:"required"`
	Title       string `db:"title" form:"title"`
	Description string `db:"description" form:"description"`
	Content     string `db:"content" form:"content"`
}

// MissionVision holds the editable about-section content, one row per
// section name ("mission", "vision").
type MissionVision struct {
	Meta
	SectionName  string  `db:"section_name" form:"sectionName" validate:"required"`
	Title        string  `db:"title" form:"title" validate:"required"`
	Description1 string  `db:"description1" form:"description1"`
	Description2 string  `db:"description2" form:"description2"`
	ImageURL     *string `db:"image_url" form:"imageUrl"`
	StatsLabel1  string  `db:"stats_label1" form:"statsLabel1"`
	StatsValue1  string  `db:"stats_value1" form:"statsValue1"`
	StatsLabel2  string  `db:"stats_label2" form:"statsLabel2"`
	StatsValue2  string  `db:"stats_value2" form:"statsValue2"`
}

// Setting is a single key/value override, e.g. "location_address".
type Setting struct {
	Meta
	SettingKey   string `db:"setting_key" form:"settingKey" validate:"required"`
	SettingValue string `db:"setting_value" form:"settingValue"`
}
