package types

// FeatureIcons is the fixed icon set the admin can choose from. The names
// match the icon sprites shipped with the public site.
var FeatureIcons = []string{"Heart", "Users", "BookOpen", "Star", "Zap", "Award", "Target", "Smile"}

type Feature struct {
	Meta
	Title       string `db:"title" form:"title" validate:"required"`
	Description string `db:"description" form:"description"`
	IconName    string `db:"icon_name" form:"iconName" validate:"required,feature_icon"`
	OrderIndex  int    `db:"order_index" form:"orderIndex"`
}

func ValidFeatureIcon(name string) bool {
	for _, icon := range FeatureIcons {
		if icon == name {
			return true
		}
	}
	return false
}
