package beerrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
	"beerstock/internal/pkg/cache"
	"beerstock/internal/pkg/logger"
)

// Códigos SQLSTATE do PostgreSQL tratados pelo repositório.
const (
	pqUniqueViolation = "23505"
	pqCheckViolation  = "23514"
	pqInvalidTextRepr = "22P02"
)

const (
	beerByNameCacheKey = "beer:name:%s"
	beerColumns        = "id, name, brand, type, quantity, max_quantity"
)

// PostgresRepository implementa domain.BeerRepository sobre PostgreSQL,
// com cache-aside (Redis) para a busca por nome.
type PostgresRepository struct {
	DB        *sql.DB
	Cache     cache.Client // nil desliga o cache
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

var _ domain.BeerRepository = (*PostgresRepository)(nil)

// NewPostgresRepository cria e retorna uma nova instância do Repositório.
func NewPostgresRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *PostgresRepository {
	return &PostgresRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// rowScanner cobre *sql.Row e *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBeer(row rowScanner) (domain.Beer, error) {
	var b domain.Beer
	var beerType string
	if err := row.Scan(&b.ID, &b.Name, &b.Brand, &beerType, &b.Quantity, &b.MaxQuantity); err != nil {
		return domain.Beer{}, err
	}
	b.Type = domain.BeerType(beerType)
	return b, nil
}

// pqCode devolve o SQLSTATE de um erro do driver pq, ou "".
func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// FindByName busca uma cerveja pelo nome usando a estratégia Cache-Aside.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (domain.Beer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(beerByNameCacheKey, name)

	// 1. Cache (Redis)
	if r.Cache != nil {
		cached, err := r.Cache.Get(ctxTimeout, key)
		if err == nil {
			var b domain.Beer
			if json.Unmarshal([]byte(cached), &b) == nil {
				r.logger.Debug("Cache HIT para cerveja.", map[string]interface{}{"name": name})
				return b, nil
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("Falha ao ler do cache Redis; seguindo para o DB.", map[string]interface{}{"error": err.Error()})
		}
	}

	// 2. Banco de Dados
	query := `SELECT ` + beerColumns + ` FROM beers WHERE name = $1`
	b, err := scanBeer(r.DB.QueryRowContext(ctxTimeout, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Beer{}, domain.ErrBeerNotFound
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cerveja por nome no DB.", err)
		return domain.Beer{}, apperror.NewDBError("Falha ao buscar cerveja por nome", err)
	}

	// 3. Popula o cache
	r.cacheBeer(ctxTimeout, b)
	return b, nil
}

// FindIDByName lê o ID dono do nome direto do PostgreSQL, sem cache.
func (r *PostgresRepository) FindIDByName(ctx context.Context, name string) (string, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var id string
	err := r.DB.QueryRowContext(ctxTimeout, `SELECT id FROM beers WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrBeerNotFound
	}
	if err != nil {
		r.logger.Error("Falha ao verificar nome no DB.", err)
		return "", apperror.NewDBError("Falha ao verificar nome da cerveja", err)
	}
	return id, nil
}

// FindByID busca uma cerveja pelo ID. IDs que não são UUID válidos são tratados como ausentes.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (domain.Beer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Beer{}, domain.ErrBeerNotFound
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + beerColumns + ` FROM beers WHERE id = $1`
	b, err := scanBeer(r.DB.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Beer{}, domain.ErrBeerNotFound
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cerveja por ID no DB.", err)
		return domain.Beer{}, apperror.NewDBError("Falha ao buscar cerveja por ID", err)
	}
	return b, nil
}

// FindAll devolve todas as cervejas na ordem de criação.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.Beer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + beerColumns + ` FROM beers ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll.", err)
		return nil, apperror.NewDBError("Falha ao listar cervejas", err)
	}
	defer rows.Close()

	beers := make([]domain.Beer, 0)
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear cerveja na iteração de FindAll.", err)
			return nil, apperror.NewDBError("Falha ao mapear cervejas do DB", err)
		}
		beers = append(beers, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de cervejas.", err)
		return nil, apperror.NewDBError("Erro após iteração de cervejas", err)
	}

	return beers, nil
}

// Save insere (ID vazio) ou substitui (ID existente) a cerveja.
// A unicidade do nome é garantida pelo índice UNIQUE; a violação vira domain.ErrDuplicateName.
func (r *PostgresRepository) Save(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	if beer.ID == "" {
		return r.insert(ctx, beer)
	}
	return r.update(ctx, beer)
}

func (r *PostgresRepository) insert(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	beer.ID = uuid.New().String()
	now := time.Now().UTC()

	query := `
		INSERT INTO beers (id, name, brand, type, quantity, max_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + beerColumns

	saved, err := scanBeer(r.DB.QueryRowContext(ctxTimeout, query,
		beer.ID, beer.Name, beer.Brand, string(beer.Type), beer.Quantity, beer.MaxQuantity, now,
	))
	if err != nil {
		switch pqCode(err) {
		case pqUniqueViolation:
			return domain.Beer{}, domain.ErrDuplicateName
		case pqCheckViolation:
			return domain.Beer{}, domain.ErrStockBoundViolated
		}
		r.logger.Error("Falha ao inserir cerveja no DB.", err)
		return domain.Beer{}, apperror.NewDBError("Falha ao inserir cerveja", err)
	}

	return saved, nil
}

func (r *PostgresRepository) update(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	if _, err := uuid.Parse(beer.ID); err != nil {
		return domain.Beer{}, domain.ErrBeerNotFound
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.Beer{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	// 1. Bloqueia a linha e guarda o nome antigo para invalidar o cache
	var oldName string
	err = tx.QueryRowContext(ctxTimeout, `SELECT name FROM beers WHERE id = $1 FOR UPDATE`, beer.ID).Scan(&oldName)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Beer{}, domain.ErrBeerNotFound
	}
	if err != nil {
		r.logger.Error("Falha ao bloquear cerveja para atualização.", err)
		return domain.Beer{}, apperror.NewDBError("Falha ao buscar cerveja para atualização", err)
	}

	// 2. Substitui todos os campos (ID preservado)
	query := `
		UPDATE beers
		SET name = $1, brand = $2, type = $3, quantity = $4, max_quantity = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + beerColumns

	saved, err := scanBeer(tx.QueryRowContext(ctxTimeout, query,
		beer.Name, beer.Brand, string(beer.Type), beer.Quantity, beer.MaxQuantity, time.Now().UTC(), beer.ID,
	))
	if err != nil {
		switch pqCode(err) {
		case pqUniqueViolation:
			return domain.Beer{}, domain.ErrDuplicateName
		case pqCheckViolation:
			return domain.Beer{}, domain.ErrStockBoundViolated
		}
		r.logger.Error("Falha ao atualizar cerveja no DB.", err)
		return domain.Beer{}, apperror.NewDBError("Falha ao atualizar cerveja", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Beer{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	r.evict(ctxTimeout, oldName, saved.Name)
	return saved, nil
}

// DeleteByID remove a cerveja e invalida o cache.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrBeerNotFound
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var name string
	err := r.DB.QueryRowContext(ctxTimeout, `DELETE FROM beers WHERE id = $1 RETURNING name`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBeerNotFound
	}
	if err != nil {
		r.logger.Error("Falha ao deletar cerveja do DB.", err)
		return apperror.NewDBError("Falha ao deletar cerveja", err)
	}

	r.evict(ctxTimeout, name)
	return nil
}

// AdjustQuantity aplica delta numa única escrita condicional: a linha só é alterada
// se o resultado ficar entre 0 e max_quantity. Duas chamadas concorrentes nunca
// violam o limite, pois a condição é reavaliada sob o lock da linha.
func (r *PostgresRepository) AdjustQuantity(ctx context.Context, id string, delta int) (domain.Beer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Beer{}, domain.ErrBeerNotFound
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		UPDATE beers
		SET quantity = quantity + $1, updated_at = $2
		WHERE id = $3 AND quantity + $1 >= 0 AND quantity + $1 <= max_quantity
		RETURNING ` + beerColumns

	saved, err := scanBeer(r.DB.QueryRowContext(ctxTimeout, query, delta, time.Now().UTC(), id))
	if errors.Is(err, sql.ErrNoRows) {
		// Nenhuma linha: ou o ID não existe, ou o limite seria violado.
		var exists bool
		if err := r.DB.QueryRowContext(ctxTimeout, `SELECT EXISTS(SELECT 1 FROM beers WHERE id = $1)`, id).Scan(&exists); err != nil {
			return domain.Beer{}, apperror.NewDBError("Falha ao verificar existência da cerveja", err)
		}
		if !exists {
			return domain.Beer{}, domain.ErrBeerNotFound
		}
		r.logger.Warn("Escrita condicional de estoque rejeitada.", map[string]interface{}{"id": id, "delta": delta})
		return domain.Beer{}, domain.ErrStockBoundViolated
	}
	if err != nil {
		if pqCode(err) == pqInvalidTextRepr {
			return domain.Beer{}, domain.ErrBeerNotFound
		}
		r.logger.Error("Falha ao ajustar estoque no DB.", err)
		return domain.Beer{}, apperror.NewDBError("Falha ao ajustar estoque", err)
	}

	r.evict(ctxTimeout, saved.Name)
	return saved, nil
}

// --- Cache helpers ---

func (r *PostgresRepository) cacheBeer(ctx context.Context, b domain.Beer) {
	if r.Cache == nil {
		return
	}
	payload, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, fmt.Sprintf(beerByNameCacheKey, b.Name), payload, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar cerveja no cache.", map[string]interface{}{"name": b.Name, "error": err.Error()})
	}
}

func (r *PostgresRepository) evict(ctx context.Context, names ...string) {
	if r.Cache == nil || len(names) == 0 {
		return
	}
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, fmt.Sprintf(beerByNameCacheKey, n))
	}
	if err := r.Cache.Delete(ctx, keys...); err != nil {
		r.logger.Warn("Falha ao invalidar cache de cerveja.", map[string]interface{}{"names": names, "error": err.Error()})
	}
}
