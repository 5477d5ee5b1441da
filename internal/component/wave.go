package component

// Wave — состояние волн: счётчик, блокировка и очередь появления.
type Wave struct {
	Number     int   // номер текущей (или следующей) волны, >= 1
	Active     bool  // блокировка: пока true, новая волна не начинается
	SpawnQueue []int // уровни врагов, ожидающих появления, от слабых к сильным
	SpawnTimer int   // тики с последнего появления
}
