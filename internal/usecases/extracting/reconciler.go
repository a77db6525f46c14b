package extracting

// ReconcileBy desduplica os registros mantendo a primeira ocorrência de cada
// chave, na ordem recebida. A mesma entidade pode aparecer em mais de um
// dashboard; vence a do dashboard configurado primeiro, mesmo que duplicatas
// posteriores tragam métricas mais recentes. Registros com chave vazia são
// descartados: sem identificador não há como endereçá-los adiante.
func ReconcileBy[T any](records []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(records))
	unique := make([]T, 0, len(records))

	for _, record := range records {
		id := key(record)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, record)
	}

	return unique
}
