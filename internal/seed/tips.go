package seed

import (
	_ "embed"
	"errors"
	"fmt"

	"helphub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed default_tips.yml
var defaultTipsYAML []byte

// DefaultTip is one entry of the built-in tip catalogue.
type DefaultTip struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// TipCatalogue is the parsed form of default_tips.yml.
type TipCatalogue struct {
	Owner struct {
		Email    string `yaml:"email"`
		FullName string `yaml:"full_name"`
	} `yaml:"owner"`
	Tips []DefaultTip `yaml:"tips"`
}

// LoadTipCatalogue parses the embedded tip catalogue.
func LoadTipCatalogue() (*TipCatalogue, error) {
	return parseTipCatalogue(defaultTipsYAML)
}

func parseTipCatalogue(raw []byte) (*TipCatalogue, error) {
	var cat TipCatalogue
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse tip catalogue: %w", err)
	}
	if cat.Owner.Email == "" {
		return nil, errors.New("tip catalogue has no owner email")
	}
	for i, tip := range cat.Tips {
		if tip.Title == "" || tip.Description == "" || tip.Category == "" {
			return nil, fmt.Errorf("tip catalogue entry %d is incomplete", i)
		}
	}
	return &cat, nil
}

// Tips seeds the built-in community tips under a system account. Running it
// twice leaves a single copy of each tip.
func Tips(db *gorm.DB) error {
	cat, err := LoadTipCatalogue()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		findErr := tx.Where("email = ?", cat.Owner.Email).First(&owner).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// The system account is not meant to sign in.
			hash, err := bcrypt.GenerateFromPassword([]byte(gofakeit.Password(true, true, true, true, false, 32)), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash system password: %w", err)
			}
			owner = models.User{
				Email:    cat.Owner.Email,
				Password: string(hash),
				FullName: cat.Owner.FullName,
			}
			if err := tx.Create(&owner).Error; err != nil {
				return err
			}
		case findErr != nil:
			return findErr
		}

		for _, item := range cat.Tips {
			tip := models.CommunityTip{
				Title:       item.Title,
				Description: item.Description,
				Category:    item.Category,
				UserID:      owner.ID,
			}
			if err := tx.Where(models.CommunityTip{Title: item.Title, UserID: owner.ID}).
				FirstOrCreate(&tip).Error; err != nil {
				return fmt.Errorf("seed tip %q: %w", item.Title, err)
			}
		}
		return nil
	})
}
