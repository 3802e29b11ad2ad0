package service

// ChangeNotifier receives a notification after every successful catalog
// mutation so connected frontends can refresh. A nil notifier disables the
// feed (used in tests).
type ChangeNotifier interface {
	NotifyChange(recurso, acao string, id uint)
}

const (
	AcaoCriado    = "criado"
	AcaoAlterado  = "alterado"
	AcaoRemovido  = "removido"
	AcaoVinculado = "vinculado"
)
