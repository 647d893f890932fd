package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"m7s.live/inspector/pkg"
	"m7s.live/inspector/pkg/box"
)

// BoxRecord is one box of an inspected file.
type BoxRecord struct {
	ID         uint   `gorm:"primarykey"`
	File       string `gorm:"index"`
	Path       string
	Type       string `gorm:"index;size:4"`
	UserType   string
	Offset     int64
	Size       uint64
	HeaderSize int
	Depth      int
	ParentID   *uint
	Known      bool // a decoder understood the content
}

func Open(driver, dsn string) (*gorm.DB, error) {
	factory, ok := Factory[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnknownDriver, driver)
	}
	db, err := gorm.Open(factory(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err = db.AutoMigrate(&BoxRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}

// SaveTree replaces the records of file with the given tree, in file order.
func SaveTree(db *gorm.DB, file string, nodes []*box.Node) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("file = ?", file).Delete(&BoxRecord{}).Error; err != nil {
			return err
		}
		return saveNodes(tx, file, nodes, nil)
	})
}

func saveNodes(tx *gorm.DB, file string, nodes []*box.Node, parentID *uint) error {
	for _, node := range nodes {
		record := BoxRecord{
			File:       file,
			Path:       node.Path(),
			Type:       node.Name(),
			UserType:   node.UserTypeString(),
			Offset:     node.Offset,
			Size:       node.Size,
			HeaderSize: node.HeaderSize,
			Depth:      node.Depth(),
			ParentID:   parentID,
			Known:      node.Payload != nil,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if err := saveNodes(tx, file, node.Children(), &record.ID); err != nil {
			return err
		}
	}
	return nil
}

// Boxes lists the records of file in file order, only those of type typ
// unless it is empty.
func Boxes(db *gorm.DB, file, typ string) (records []BoxRecord, err error) {
	query := db.Where("file = ?", file)
	if typ != "" {
		query = query.Where("type = ?", typ)
	}
	err = query.Order("id").Find(&records).Error
	return
}
