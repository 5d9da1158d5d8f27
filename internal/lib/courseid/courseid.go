// Package courseid реализует разбор идентификаторов курсов учебной платформы.
//
// Поддерживаются два формата: новый "course-v1:Org+Course+Run" и устаревший
// "Org/Course/Run". Из идентификатора извлекается код организации, который
// используется как пространство имён для пользовательских настроек.
package courseid

import (
	"fmt"
	"strings"
)

const coursePrefix = "course-v1:"

// CourseKey содержит разобранные составляющие идентификатора курса.
type CourseKey struct {
	Org    string
	Course string
	Run    string
}

// Parse разбирает строковый идентификатор курса.
//
// Возвращает ошибку, если строка не соответствует ни одному из поддерживаемых
// форматов или какая-либо из составляющих пуста.
func Parse(raw string) (*CourseKey, error) {
	const op = "courseid.Parse"

	var parts []string
	if rest, ok := strings.CutPrefix(raw, coursePrefix); ok {
		parts = strings.Split(rest, "+")
	} else {
		parts = strings.Split(raw, "/")
	}

	if len(parts) != 3 {
		return nil, fmt.Errorf("%s: invalid course id %q", op, raw)
	}
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%s: invalid course id %q", op, raw)
		}
	}

	return &CourseKey{
		Org:    parts[0],
		Course: parts[1],
		Run:    parts[2],
	}, nil
}

// String возвращает каноничное представление идентификатора курса.
func (k *CourseKey) String() string {
	return coursePrefix + k.Org + "+" + k.Course + "+" + k.Run
}
