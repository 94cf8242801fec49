package resourcegroup

import (
	"context"
	"database/sql"

	log "github.com/sirupsen/logrus"
)

type ResourceGroupRepo interface {
	GetAll(ctx context.Context) ([]ResourceGroup, error)
	Store(ctx context.Context, group ResourceGroup) (int, error)
	Update(ctx context.Context, group ResourceGroup) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ResourceGroupRepoImpl struct {
	db *sql.DB
}

func NewResourceGroupRepo(db *sql.DB) *ResourceGroupRepoImpl {
	return &ResourceGroupRepoImpl{db}
}

func (r *ResourceGroupRepoImpl) GetAll(ctx context.Context) ([]ResourceGroup, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, bmnumber, rgid, rgd, username FROM resourcegroup")
	if err != nil {
		log.WithError(err).Error("Error fetching resource groups")
		return nil, err
	}
	defer rows.Close()

	var groups []ResourceGroup
	for rows.Next() {
		var group ResourceGroup
		var username sql.NullString
		if err := rows.Scan(&group.ID, &group.BMNumber, &group.RGID, &group.RGD, &username); err != nil {
			log.WithError(err).Error("Error scanning resource group")
			return nil, err
		}
		group.Username = username.String
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (r *ResourceGroupRepoImpl) Store(ctx context.Context, group ResourceGroup) (int, error) {
	stmt, err := r.db.PrepareContext(ctx, "INSERT INTO resourcegroup (bmnumber, rgid, rgd, username) VALUES (?, ?, ?, ?)")
	if err != nil {
		log.WithError(err).Error("Error preparing resource group insert")
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, group.BMNumber, group.RGID, group.RGD, group.Username)
	if err != nil {
		log.WithError(err).Error("Error storing resource group")
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *ResourceGroupRepoImpl) Update(ctx context.Context, group ResourceGroup) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE resourcegroup SET bmnumber = ?, rgid = ?, rgd = ? WHERE id = ?",
		group.BMNumber, group.RGID, group.RGD, group.ID,
	)
	if err != nil {
		log.WithError(err).Error("Error updating resource group")
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *ResourceGroupRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM resourcegroup WHERE id = ?", id)
	if err != nil {
		log.WithError(err).Error("Error deleting resource group")
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
