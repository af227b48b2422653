package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"cinegraph-api/internal/config"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ErrUnavailable marca fallos de conexión o timeout contra Neo4j.
// El caller puede reintentar; nunca se convierte en resultado vacío.
var ErrUnavailable = errors.New("neo4j no disponible")

// Tx es la vista mínima de una transacción de lectura que usan los
// repositorios: correr un Cypher con parámetros y recibir las filas
// como mapas alias -> valor.
type Tx interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}

type TxWork func(ctx context.Context, tx Tx) (any, error)

// Graph es el handle que se inyecta a los repositorios. Se construye
// una sola vez en el arranque y se cierra en el shutdown; no hay
// singleton global.
type Graph interface {
	ReadTx(ctx context.Context, work TxWork) (any, error)
}

type Neo4j struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration

	closeOnce sync.Once
	closeErr  error
}

// Connect crea el driver, verifica la conectividad y devuelve el handle.
// Si Neo4j no responde se devuelve ErrUnavailable envuelto.
func Connect(ctx context.Context, cfg *config.Config) (*Neo4j, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("creando driver de neo4j: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.Printf("[neo4j] conectado a %s / DB=%s\n", cfg.Neo4jURI, cfg.Neo4jDatabase)
	return &Neo4j{
		driver:   driver,
		database: cfg.Neo4jDatabase,
		timeout:  cfg.QueryTimeout,
	}, nil
}

// ReadTx abre una sesión, ejecuta `work` dentro de una transacción de
// lectura con el timeout configurado y cierra la sesión. Todo lo que
// corre dentro de `work` ve el mismo snapshot.
func (n *Neo4j) ReadTx(ctx context.Context, work TxWork) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	session := n.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: n.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return work(ctx, managedTx{tx: tx})
	})
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Close es idempotente: cerrar dos veces no es un error.
func (n *Neo4j) Close(ctx context.Context) error {
	n.closeOnce.Do(func() {
		n.closeErr = n.driver.Close(ctx)
		log.Println("[neo4j] driver cerrado")
	})
	return n.closeErr
}

// managedTx adapta la transacción del driver a la interfaz Tx,
// materializando cada registro como mapa alias -> valor.
type managedTx struct {
	tx neo4j.ManagedTransaction
}

func (t managedTx) Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	result, err := t.tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.AsMap())
	}
	return rows, nil
}

func classify(err error) error {
	if neo4j.IsConnectivityError(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
