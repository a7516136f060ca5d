package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/boardgame-reviews/internal/models"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}
	return t
}

const defaultImg = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

// SeedData is the fixed catalogue used by development databases and tests.
// Review 1 has no comments, review 2 has three.
type SeedData struct {
	Categories []models.Category
	Users      []models.User
	Reviews    []models.Review
	Comments   []models.Comment
}

func DefaultSeedData() SeedData {
	return SeedData{
		Categories: []models.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		Users: []models.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Reviews: []models.Review{
			{
				ReviewID: 1, Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire",
				ReviewImgURL: defaultImg, ReviewBody: "Farmyard fun!", Category: "euro game",
				CreatedAt: at("2021-01-18T10:00:20.514Z"), Votes: 1,
			},
			{
				ReviewID: 2, Title: "Jenga", Designer: "Leslie Scott", Owner: "philippaclaire9",
				ReviewImgURL: defaultImg, ReviewBody: "Fiddly fun for all the family", Category: "dexterity",
				CreatedAt: at("2021-01-18T10:01:41.251Z"), Votes: 5,
			},
			{
				ReviewID: 3, Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface",
				ReviewImgURL: defaultImg, ReviewBody: "We couldn't find the werewolf!", Category: "social deduction",
				CreatedAt: at("2021-01-18T10:01:41.251Z"), Votes: 5,
			},
			{
				ReviewID: 4, Title: "Dolor reprehenderit", Designer: "Gamey McGameface", Owner: "mallionaire",
				ReviewImgURL: defaultImg, ReviewBody: "Consequat velit occaecat voluptate do.", Category: "social deduction",
				CreatedAt: at("2021-01-22T11:35:50.936Z"), Votes: 7,
			},
			{
				ReviewID: 5, Title: "Proident tempor et.", Designer: "Seymour Buttz", Owner: "mallionaire",
				ReviewImgURL: defaultImg, ReviewBody: "Labore occaecat sunt qui commodo anim.", Category: "social deduction",
				CreatedAt: at("2021-01-07T09:06:08.077Z"), Votes: 5,
			},
			{
				ReviewID: 6, Title: "Occaecat consequat officia in quis commodo.", Designer: "Ollie Tabooger", Owner: "mallionaire",
				ReviewImgURL: defaultImg, ReviewBody: "Fugiat fugiat enim officia laborum quis.", Category: "social deduction",
				CreatedAt: at("2020-09-13T14:19:28.077Z"), Votes: 8,
			},
			{
				ReviewID: 7, Title: "Mollit elit qui incididunt veniam occaecat cupidatat", Designer: "Avery Wunzboogerz", Owner: "mallionaire",
				ReviewImgURL: defaultImg, ReviewBody: "Consectetur incididunt aliquip sunt officia.", Category: "social deduction",
				CreatedAt: at("2021-01-25T11:16:54.963Z"), Votes: 9,
			},
		},
		Comments: []models.Comment{
			{Body: "I loved this game too!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: at("2017-11-22T12:43:33.389Z")},
			{Body: "My dog loved this game too!", Votes: 13, Author: "mallionaire", ReviewID: 3, CreatedAt: at("2021-01-18T10:09:05.410Z")},
			{Body: "I didn't know dogs could play games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: at("2021-01-18T10:09:48.110Z")},
			{Body: "EPIC board game!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: at("2017-11-22T12:36:03.389Z")},
			{Body: "Now this is a story all about how, board games turned my life upside down", Votes: 13, Author: "mallionaire", ReviewID: 2, CreatedAt: at("2021-01-18T10:24:05.410Z")},
			{Body: "Not sure about dogs, but my cat likes to get involved with board games.", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: at("2021-03-27T19:49:48.110Z")},
		},
	}
}

var seedTables = []string{"comments", "reviews", "users", "categories"}

// Seed empties every table and loads data. Serial sequences are restarted
// and then moved past the explicit review ids.
func Seed(ctx context.Context, db *gorm.DB, data SeedData) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range seedTables {
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
				return fmt.Errorf("truncate %s: %w", table, err)
			}
		}

		inserts := []struct {
			name  string
			value interface{}
			count int
		}{
			{"categories", &data.Categories, len(data.Categories)},
			{"users", &data.Users, len(data.Users)},
			{"reviews", &data.Reviews, len(data.Reviews)},
			{"comments", &data.Comments, len(data.Comments)},
		}
		for _, ins := range inserts {
			if ins.count == 0 {
				continue
			}
			if err := tx.Omit(clause.Associations).Create(ins.value).Error; err != nil {
				return fmt.Errorf("seed %s: %w", ins.name, err)
			}
		}

		return tx.Exec(
			"SELECT setval(pg_get_serial_sequence('reviews', 'review_id'), COALESCE((SELECT MAX(review_id) FROM reviews), 0) + 1, false)",
		).Error
	})
}
