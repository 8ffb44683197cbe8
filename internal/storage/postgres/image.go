package postgres

import "comicvault/internal/domain"

// imageColumns maps the per-tier image URL columns shared by characters and issues.
type imageColumns struct {
	ImageOriginal    *string `db:"image_original"`
	ImageSuper       *string `db:"image_super"`
	ImageScreenLarge *string `db:"image_screen_large"`
	ImageScreen      *string `db:"image_screen"`
	ImageMedium      *string `db:"image_medium"`
	ImageSmall       *string `db:"image_small"`
	ImageThumb       *string `db:"image_thumb"`
	ImageIcon        *string `db:"image_icon"`
	ImageTiny        *string `db:"image_tiny"`
}

var imageColumnNames = []string{
	"image_original", "image_super", "image_screen_large", "image_screen",
	"image_medium", "image_small", "image_thumb", "image_icon", "image_tiny",
}

func imageColumnsFrom(img domain.Image) imageColumns {
	return imageColumns{
		ImageOriginal:    img.OriginalURL,
		ImageSuper:       img.SuperURL,
		ImageScreenLarge: img.ScreenLargeURL,
		ImageScreen:      img.ScreenURL,
		ImageMedium:      img.MediumURL,
		ImageSmall:       img.SmallURL,
		ImageThumb:       img.ThumbURL,
		ImageIcon:        img.IconURL,
		ImageTiny:        img.TinyURL,
	}
}

func (c imageColumns) values() []any {
	return []any{
		c.ImageOriginal, c.ImageSuper, c.ImageScreenLarge, c.ImageScreen,
		c.ImageMedium, c.ImageSmall, c.ImageThumb, c.ImageIcon, c.ImageTiny,
	}
}

func (c imageColumns) toDomain() domain.Image {
	return domain.Image{
		OriginalURL:    c.ImageOriginal,
		SuperURL:       c.ImageSuper,
		ScreenLargeURL: c.ImageScreenLarge,
		ScreenURL:      c.ImageScreen,
		MediumURL:      c.ImageMedium,
		SmallURL:       c.ImageSmall,
		ThumbURL:       c.ImageThumb,
		IconURL:        c.ImageIcon,
		TinyURL:        c.ImageTiny,
	}
}
