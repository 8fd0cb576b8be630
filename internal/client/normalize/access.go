package normalize

// asObject проверяет, что значение является JSON-объектом
func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok && obj != nil
}

// lookup проходит по вложенным объектам; промежуточные не-объекты дают false
func lookup(obj map[string]any, path ...string) (any, bool) {
	var cur any = obj
	for _, key := range path {
		m, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// stringAt возвращает непустую строку по пути
func stringAt(obj map[string]any, path ...string) (string, bool) {
	v, ok := lookup(obj, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// boolAt возвращает булево значение по пути
func boolAt(obj map[string]any, path ...string) (bool, bool) {
	v, ok := lookup(obj, path...)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
