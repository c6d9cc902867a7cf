// Package seed defines the default content for every public section. The
// public renderers fall back to these sets whenever a category has no rows
// (or the store is unreachable), so the site never looks broken before any
// admin content exists. The seed command inserts the same sets so a fresh
// deployment starts populated.
package seed

import (
	"lumiere/internal/utils"
	"lumiere/pkg/types"
)

func DefaultFeatures() []*types.Feature {
	return []*types.Feature{
		{
			Title:       "Foi Authentique",
			Description: "Une pratique spirituelle sincère basée sur les valeurs éternelles",
			IconName:    "Heart",
			OrderIndex:  0,
		},
		{
			Title:       "Communauté Accueillante",
			Description: "Un espace où chacun trouve sa place et se sent appartenir",
			IconName:    "Users",
			OrderIndex:  1,
		},
		{
			Title:       "Enseignement Enrichissant",
			Description: "Des messages profonds et pertinents pour votre vie",
			IconName:    "BookOpen",
			OrderIndex:  2,
		},
	}
}

func DefaultServices() []*types.Service {
	return []*types.Service{
		{
			Day:         "Dimanche",
			Time:        "10h00",
			Title:       "Culte du Dimanche",
			Description: "Louange, prière et enseignement pour toute la famille",
			OrderIndex:  0,
		},
		{
			Day:         "Mercredi",
			Time:        "19h00",
			Title:       "Étude Biblique",
			Description: "Approfondissement de la Parole en petit groupe",
			OrderIndex:  1,
		},
		{
			Day:         "Vendredi",
			Time:        "20h00",
			Title:       "Soirée de Prière",
			Description: "Un temps d'intercession et de communion fraternelle",
			OrderIndex:  2,
		},
	}
}

func DefaultEvents() []*types.Event {
	return []*types.Event{
		{
			Date:        "15 Décembre",
			Title:       "Célébration de Noël",
			Description: "Une célébration spéciale de la naissance du Christ avec musique et festif",
			Attendees:   "500+",
			ImageURL:    utils.StringPtr("/static/images/img1.svg"),
			OrderIndex:  0,
		},
		{
			Date:        "22 Décembre",
			Title:       "Concert de Chants Sacrés",
			Description: "Soirée musicale inspirante avec l'orchestre de notre église",
			Attendees:   "300+",
			ImageURL:    utils.StringPtr("/static/images/img2.svg"),
			OrderIndex:  1,
		},
		{
			Date:        "5 Janvier",
			Title:       "Retraite Spirituelle",
			Description: "Weekend de méditation et de croissance spirituelle en montagne",
			Attendees:   "150+",
			ImageURL:    utils.StringPtr("/static/images/img3.svg"),
			OrderIndex:  2,
		},
		{
			Date:        "20 Janvier",
			Title:       "Conférence Jeunesse",
			Description: "Rencontre des jeunes avec des orateurs inspirants",
			Attendees:   "200+",
			ImageURL:    utils.StringPtr("/static/images/img1.svg"),
			OrderIndex:  3,
		},
	}
}

func DefaultTestimonials() []*types.Testimonial {
	return []*types.Testimonial{
		{
			Name:       "Claire Martin",
			Role:       "Membre depuis 3 ans",
			Text:       "Grace & Faith a changé ma vie. J'ai trouvé ici une communauté chaleureuse et un enseignement qui me parle vraiment.",
			Rating:     5,
			OrderIndex: 0,
		},
		{
			Name:       "Thomas Lefevre",
			Role:       "Nouveau Membre",
			Text:       "Dès mon premier dimanche, j'ai senti que j'avais trouvé ma place. Les services sont inspirants et les gens sont accueillants.",
			Rating:     5,
			OrderIndex: 1,
		},
		{
			Name:       "Marie Rousseau",
			Role:       "Parent",
			Text:       "Les programmes jeunesse sont exceptionnels. Mes enfants aiment venir et apprennent des valeurs importantes.",
			Rating:     5,
			OrderIndex: 2,
		},
		{
			Name:       "Jean Dupuis",
			Role:       "Volontaire",
			Text:       "C'est une honneur de servir dans cette église. L'atmosphère et la vision sont vraiment exceptionnelles.",
			Rating:     5,
			OrderIndex: 3,
		},
	}
}

func DefaultMembers() []*types.CommunityMember {
	return []*types.CommunityMember{
		{
			Name:       "Pasteur Jean",
			Role:       "Pasteur Principal",
			ImageURL:   utils.StringPtr("/static/images/img1.svg"),
			OrderIndex: 0,
		},
		{
			Name:       "Marie Dupont",
			Role:       "Responsable Louange",
			ImageURL:   utils.StringPtr("/static/images/img2.svg"),
			OrderIndex: 1,
		},
		{
			Name:       "Sophie Bernard",
			Role:       "Ministère Jeunesse",
			ImageURL:   utils.StringPtr("/static/images/img3.svg"),
			OrderIndex: 2,
		},
	}
}

func DefaultPodcasts() []*types.Podcast {
	return []*types.Podcast{
		{
			Title:           "La Foi en Action",
			Episode:         "Épisode 12",
			DurationSeconds: 1965,
			Speaker:         "Pasteur Jean",
			Description:     "Découvrez comment vivre sa foi au quotidien",
			ImageURL:        utils.StringPtr("/static/images/img1.svg"),
		},
		{
			Title:           "Paroles de Vie",
			Episode:         "Épisode 8",
			DurationSeconds: 1692,
			Speaker:         "Marie Dupont",
			Description:     "Méditations inspirantes pour votre journée",
			ImageURL:        utils.StringPtr("/static/images/img2.svg"),
		},
		{
			Title:           "Questions de Jeunesse",
			Episode:         "Épisode 15",
			DurationSeconds: 2130,
			Speaker:         "Sophie Bernard",
			Description:     "Réponses aux questions spirituelles des jeunes",
			ImageURL:        utils.StringPtr("/static/images/img3.svg"),
		},
		{
			Title:           "Prières du Matin",
			Episode:         "Série Daily",
			DurationSeconds: 420,
			Speaker:         "Communauté",
			Description:     "Prière inspirante pour bien commencer votre jour",
			ImageURL:        utils.StringPtr("/static/images/img1.svg"),
		},
	}
}

func DefaultVideos() []*types.ShortVideo {
	videos := []*types.ShortVideo{
		{Title: "Mot d'Encouragement", DurationSeconds: 45, Creator: "Pasteur Jean", ThumbnailURL: utils.StringPtr("/static/images/img1.svg")},
		{Title: "Verset du Jour", DurationSeconds: 72, Creator: "Communauté", ThumbnailURL: utils.StringPtr("/static/images/img2.svg")},
		{Title: "Témoignage Express", DurationSeconds: 58, Creator: "Marie Dupont", ThumbnailURL: utils.StringPtr("/static/images/img3.svg")},
		{Title: "Prière Rapide", DurationSeconds: 90, Creator: "Sophie Bernard", ThumbnailURL: utils.StringPtr("/static/images/img1.svg")},
		{Title: "Conseil du Dimanche", DurationSeconds: 52, Creator: "Leadership", ThumbnailURL: utils.StringPtr("/static/images/img2.svg")},
		{Title: "Citation Inspirante", DurationSeconds: 35, Creator: "Inspiration Daily", ThumbnailURL: utils.StringPtr("/static/images/img3.svg")},
	}
	return videos
}

func DefaultGalleryItems() []*types.GalleryItem {
	titles := []string{
		"Moment Spirituel", "Communion", "Célébration",
		"Prière", "Enseignement", "Communauté",
		"Partage", "Foi", "Espérance",
	}
	images := []string{"/static/images/img1.svg", "/static/images/img2.svg", "/static/images/img3.svg"}

	items := make([]*types.GalleryItem, 0, len(titles))
	for i, title := range titles {
		items = append(items, &types.GalleryItem{
			Title:      title,
			Category:   types.GalleryCategories[i%len(types.GalleryCategories)],
			ImageURL:   utils.StringPtr(images[i%len(images)]),
			OrderIndex: i,
		})
	}
	return items
}

func DefaultMissionVision() []*types.MissionVision {
	return []*types.MissionVision{
		{
			SectionName:  "mission",
			Title:        "Notre Mission",
			Description1: "Partager l'amour du Christ et accompagner chacun dans sa croissance spirituelle.",
			Description2: "Nous croyons en une communauté ouverte, où chaque personne est accueillie telle qu'elle est.",
			StatsLabel1:  "Membres",
			StatsValue1:  "850+",
			StatsLabel2:  "Années",
			StatsValue2:  "25",
		},
		{
			SectionName:  "vision",
			Title:        "Notre Vision",
			Description1: "Être une lumière dans la ville, un lieu de restauration et d'espérance.",
			Description2: "Former des disciples engagés qui transforment leur entourage.",
			StatsLabel1:  "Groupes",
			StatsValue1:  "30",
			StatsLabel2:  "Pays touchés",
			StatsValue2:  "12",
		},
	}
}
