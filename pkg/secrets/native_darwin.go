//go:build darwin

package secrets

import (
	"errors"

	gokeychain "github.com/keybase/go-keychain"
)

// nativeProvider talks to the macOS Keychain directly and surfaces raw
// OSStatus codes. Items are stored as generic passwords, never synced to
// iCloud and only readable while the machine is unlocked.
type nativeProvider struct{}

func NewNativeProvider() Provider {
	return nativeProvider{}
}

func (nativeProvider) Delete(service, key string) Status {
	return osStatus(gokeychain.DeleteGenericPasswordItem(service, key))
}

func (nativeProvider) Insert(service, key string, value []byte) Status {
	item := gokeychain.NewGenericPassword(service, key, "credstore: "+key, value, "")
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlocked)
	return osStatus(gokeychain.AddItem(item))
}

func (nativeProvider) QueryOne(service, key string, wantData bool) (Status, []byte) {
	query := gokeychain.NewItem()
	query.SetSecClass(gokeychain.SecClassGenericPassword)
	query.SetService(service)
	query.SetAccount(key)
	query.SetMatchLimit(gokeychain.MatchLimitOne)
	query.SetReturnData(wantData)

	results, err := gokeychain.QueryItem(query)
	if err != nil {
		return osStatus(err), nil
	}
	if len(results) == 0 {
		return StatusItemNotFound, nil
	}
	return StatusSuccess, results[0].Data
}

func (nativeProvider) UpdateAttributes(service, key string, value []byte) Status {
	query := gokeychain.NewItem()
	query.SetSecClass(gokeychain.SecClassGenericPassword)
	query.SetService(service)
	query.SetAccount(key)
	query.SetMatchLimit(gokeychain.MatchLimitOne)

	update := gokeychain.NewItem()
	update.SetData(value)
	return osStatus(gokeychain.UpdateItem(query, update))
}

func osStatus(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var kerr gokeychain.Error
	if errors.As(err, &kerr) {
		return Status(kerr)
	}
	return StatusIO
}
