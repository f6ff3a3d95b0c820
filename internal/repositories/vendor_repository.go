package repositories

import (
	"database/sql"

	intconfig "buslink/internal/config"
	intdb "buslink/internal/db"
	"buslink/internal/domain"
	"buslink/internal/domain/models"
)

const vendorColumns = `id, name, email, phone, status, COALESCE(logo_url, ''), created_at, updated_at`

type VendorRepository struct {
	DB *sql.DB
}

func (r VendorRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VendorRepository) Create(v models.Vendor) (models.Vendor, error) {
	if v.Status == "" {
		v.Status = models.VendorStatusPending
	}
	res, err := r.db().Exec(`
		INSERT INTO vendors (name, email, phone, status, logo_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())`,
		v.Name, v.Email, v.Phone, v.Status, intdb.NullIfEmpty(v.LogoURL),
	)
	if err != nil {
		return models.Vendor{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Vendor{}, err
	}
	return r.FindOne(id)
}

func (r VendorRepository) FindAll() ([]models.Vendor, error) {
	rows, err := r.db().Query(`SELECT ` + vendorColumns + ` FROM vendors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vendor{}
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Status, &v.LogoURL, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VendorRepository) FindOne(id int64) (models.Vendor, error) {
	var v models.Vendor
	err := r.db().QueryRow(`SELECT `+vendorColumns+` FROM vendors WHERE id = ?`, id).
		Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Status, &v.LogoURL, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Vendor{}, domain.NotFoundError{Resource: "vendor"}
	}
	return v, err
}

func (r VendorRepository) Update(id int64, v models.Vendor) (models.Vendor, error) {
	existing, err := r.FindOne(id)
	if err != nil {
		return models.Vendor{}, err
	}
	if v.Name == "" {
		v.Name = existing.Name
	}
	if v.Email == "" {
		v.Email = existing.Email
	}
	if v.Phone == "" {
		v.Phone = existing.Phone
	}
	if v.Status == "" {
		v.Status = existing.Status
	}
	if v.LogoURL == "" {
		v.LogoURL = existing.LogoURL
	}

	_, err = r.db().Exec(`
		UPDATE vendors SET name = ?, email = ?, phone = ?, status = ?, logo_url = ?, updated_at = NOW()
		WHERE id = ?`,
		v.Name, v.Email, v.Phone, v.Status, intdb.NullIfEmpty(v.LogoURL), id,
	)
	if err != nil {
		return models.Vendor{}, err
	}
	return r.FindOne(id)
}

func (r VendorRepository) Remove(id int64) (models.Vendor, error) {
	v, err := r.FindOne(id)
	if err != nil {
		return models.Vendor{}, err
	}
	if _, err := r.db().Exec(`DELETE FROM vendors WHERE id = ?`, id); err != nil {
		return models.Vendor{}, err
	}
	return v, nil
}
