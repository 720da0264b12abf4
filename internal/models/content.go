package models

import (
	"bytes"
	"encoding/json"
)

// Content представляет документ как дерево типизированных узлов.
// Ядро синхронизации не интерпретирует семантику узлов: оно только
// хранит, сравнивает и копирует содержимое. Структура совместима с
// JSON-представлением редактора (type/attrs/marks/text/content).
type Content struct {
	Attrs    map[string]any `json:"attrs,omitempty"`    // Attrs произвольные атрибуты узла
	Type     string         `json:"type,omitempty"`     // Type тип узла (doc, paragraph, text, ...)
	Text     string         `json:"text,omitempty"`     // Text текст листового узла
	Marks    []Mark         `json:"marks,omitempty"`    // Marks оформление текста (bold, link, ...)
	Children []*Content     `json:"content,omitempty"`  // Children вложенные узлы
}

// Mark представляет оформление текстового узла.
type Mark struct {
	Attrs map[string]any `json:"attrs,omitempty"`
	Type  string         `json:"type"`
}

// Equal выполняет глубокое сравнение содержимого по значению.
// Сравнение идет через каноническую JSON-сериализацию: encoding/json
// сортирует ключи map, поэтому результат детерминирован, а nil и пустые
// коллекции считаются эквивалентными. Оба аргумента не модифицируются.
func (c *Content) Equal(other *Content) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}

	a, err := json.Marshal(c)
	if err != nil {
		return false
	}

	b, err := json.Marshal(other)
	if err != nil {
		return false
	}

	return bytes.Equal(a, b)
}

// Clone создает глубокую копию содержимого через JSON round-trip.
// Возвращает nil для nil-содержимого.
func (c *Content) Clone() *Content {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil
	}

	clone := &Content{}
	if err := json.Unmarshal(data, clone); err != nil {
		return nil
	}

	return clone
}
