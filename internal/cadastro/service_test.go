package cadastro_test

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trabalha-floriano/portal-backend/internal/cadastro"
)

func testService(t *testing.T, hashSenha bool) *cadastro.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cadastro.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	svc := cadastro.NewService(db, hashSenha, zap.NewNop())
	if err := svc.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return svc
}

// ── Validação antes de qualquer acesso ao banco ────────────────────────────

func TestRegistrar_CamposObrigatorios(t *testing.T) {
	// a nil DB proves validation runs before any database call
	svc := cadastro.NewService(nil, false, zap.NewNop())

	cases := []struct {
		name               string
		nome, email, senha string
	}{
		{"tudo vazio", "", "", ""},
		{"sem nome", "", "ana@ex.com", "123"},
		{"sem email", "Ana", "", "123"},
		{"sem senha", "Ana", "ana@ex.com", ""},
		{"só espaços", "  ", "  ", "  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Registrar(tc.nome, tc.email, tc.senha, "")
			if !errors.Is(err, cadastro.ErrCamposObrigatorios) {
				t.Errorf("err = %v, want ErrCamposObrigatorios", err)
			}
		})
	}
}

// ── Inserção ───────────────────────────────────────────────────────────────

func TestRegistrar_Normaliza(t *testing.T) {
	svc := testService(t, false)

	reg, err := svc.Registrar("  Ana  ", "  ANA@Ex.Com ", "segredo", "")
	if err != nil {
		t.Fatalf("Registrar: %v", err)
	}
	if reg.ID == 0 {
		t.Error("insert must assign an id")
	}
	if reg.Nome != "Ana" || reg.Email != "ana@ex.com" {
		t.Errorf("normalização falhou: nome=%q email=%q", reg.Nome, reg.Email)
	}
	if reg.Tipo != cadastro.TipoDefault {
		t.Errorf("tipo = %q, want the default %q", reg.Tipo, cadastro.TipoDefault)
	}
	// legacy mode stores the password as received
	if reg.Senha != "segredo" {
		t.Errorf("senha = %q, want the raw value in legacy mode", reg.Senha)
	}
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	svc := testService(t, false)

	if _, err := svc.Registrar("Ana", "ana@ex.com", "123", ""); err != nil {
		t.Fatalf("primeiro cadastro: %v", err)
	}
	// case-insensitive: lowering happens before the unique index sees it
	_, err := svc.Registrar("Outra Ana", "ANA@ex.com", "456", "contratante")
	if err == nil {
		t.Fatal("segundo cadastro com o mesmo email deveria falhar")
	}
}

func TestRegistrar_TipoExplicito(t *testing.T) {
	svc := testService(t, false)

	reg, err := svc.Registrar("Beto", "beto@ex.com", "123", "contratante")
	if err != nil {
		t.Fatalf("Registrar: %v", err)
	}
	if reg.Tipo != "contratante" {
		t.Errorf("tipo = %q, want contratante", reg.Tipo)
	}
}

func TestRegistrar_HashSenha(t *testing.T) {
	svc := testService(t, true)

	reg, err := svc.Registrar("Ana", "ana@ex.com", "segredo", "")
	if err != nil {
		t.Fatalf("Registrar: %v", err)
	}
	if reg.Senha == "segredo" {
		t.Fatal("com hash ligado a senha nunca é gravada em claro")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(reg.Senha), []byte("segredo")); err != nil {
		t.Error("o hash gravado deve validar a senha original")
	}
}
