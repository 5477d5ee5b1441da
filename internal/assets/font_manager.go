package assets

import (
	log "github.com/sirupsen/logrus"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Имена шрифтов
const (
	FontRegular = "regular"
	FontTitle   = "title"
)

// FontManager кэширует шрифты интерфейса по имени.
type FontManager struct {
	faces map[string]text.Face
}

// NewFontManager создает менеджер со встроенным растровым шрифтом.
// Внешние файлы шрифтов не нужны.
func NewFontManager() *FontManager {
	m := &FontManager{faces: make(map[string]text.Face)}
	regular := text.NewGoXFace(basicfont.Face7x13)
	m.faces[FontRegular] = regular
	// Заголовки рисуются тем же шрифтом, масштаб задаёт вызывающий код.
	m.faces[FontTitle] = regular
	log.WithField("faces", len(m.faces)).Debug("Fonts loaded")
	return m
}

// Face возвращает шрифт по имени. Неизвестное имя даёт основной шрифт.
func (m *FontManager) Face(name string) text.Face {
	if f, ok := m.faces[name]; ok {
		return f
	}
	return m.faces[FontRegular]
}

// Regular — короткая запись для Face(FontRegular).
func (m *FontManager) Regular() text.Face {
	return m.faces[FontRegular]
}
