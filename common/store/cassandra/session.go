package cassandra

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/omnibuildplatform/omni-cql/common/cql"
	appconfig "github.com/omnibuildplatform/omni-cql/common/config"
)

const (
	defaultSessionTimeout = 10 * time.Second
)

// Session adapts a gocql session to the cql.Session collaborator. The live
// gocql session sits behind an atomic.Value so it can be replaced when the
// driver loses all connections without blocking concurrent queries.
type Session struct {
	atomic.Value
	config   appconfig.PersistentStore
	profiles map[string]profile
	logger   *zap.Logger
}

var _ cql.Session = (*Session)(nil)

// profile is a resolved execution profile, config strings already parsed.
type profile struct {
	pageSize    int
	consistency *gocql.Consistency
	serial      *gocql.SerialConsistency
}

func parseHosts(input string) []string {
	var hosts = make([]string, 0)
	for _, h := range strings.Split(input, ",") {
		if host := strings.TrimSpace(h); len(host) > 0 {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

func regionHostFilter(region string) gocql.HostFilter {
	return gocql.HostFilterFunc(func(host *gocql.HostInfo) bool {
		applicationRegion := region
		if len(host.DataCenter()) < 3 {
			return false
		}
		return host.DataCenter()[:3] == applicationRegion
	})
}

func newCassandraCluster(config appconfig.PersistentStore) *gocql.ClusterConfig {
	hosts := parseHosts(config.Hosts)
	cluster := gocql.NewCluster(hosts...)
	if config.ProtoVersion == 0 {
		config.ProtoVersion = 4
	}
	cluster.ProtoVersion = config.ProtoVersion
	if config.Port > 0 {
		cluster.Port = config.Port
	}
	if config.User != "" && config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username:              config.User,
			Password:              config.Password,
			AllowedAuthenticators: config.AllowedAuthenticators,
		}
	}
	if config.Keyspace != "" {
		cluster.Keyspace = config.Keyspace
	}
	if config.Datacenter != "" {
		cluster.HostFilter = gocql.DataCentreHostFilter(config.Datacenter)
	}
	if config.Region != "" {
		cluster.HostFilter = regionHostFilter(config.Region)
	}
	if config.MaxConns > 0 {
		cluster.NumConns = config.MaxConns
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	return cluster
}

func initSession(config appconfig.PersistentStore) (*gocql.Session, error) {
	cluster := newCassandraCluster(config)
	cluster.Consistency = gocql.LocalQuorum
	cluster.SerialConsistency = gocql.LocalSerial
	cluster.Timeout = defaultSessionTimeout
	if level := config.QueryDefaults.Consistency; level != "" {
		parsed, err := cql.ParseConsistency(level)
		if err != nil {
			return nil, err
		}
		cluster.Consistency = convertConsistency(parsed)
	}
	if level := config.QueryDefaults.SerialConsistency; level != "" {
		parsed, err := cql.ParseSerialConsistency(level)
		if err != nil {
			return nil, err
		}
		cluster.SerialConsistency = convertSerialConsistency(parsed)
	}
	return cluster.CreateSession()
}

func parseProfiles(config appconfig.PersistentStore) (map[string]profile, error) {
	profiles := make(map[string]profile, len(config.Profiles))
	for name, p := range config.Profiles {
		resolved := profile{pageSize: p.PageSize}
		if p.Consistency != "" {
			parsed, err := cql.ParseConsistency(p.Consistency)
			if err != nil {
				return nil, fmt.Errorf("profile %q: %w", name, err)
			}
			level := convertConsistency(parsed)
			resolved.consistency = &level
		}
		if p.SerialConsistency != "" {
			parsed, err := cql.ParseSerialConsistency(p.SerialConsistency)
			if err != nil {
				return nil, fmt.Errorf("profile %q: %w", name, err)
			}
			level := convertSerialConsistency(parsed)
			resolved.serial = &level
		}
		profiles[name] = resolved
	}
	return profiles, nil
}

func NewSession(config appconfig.PersistentStore, logger *zap.Logger) (*Session, error) {
	profiles, err := parseProfiles(config)
	if err != nil {
		return nil, err
	}
	cqlSession, err := initSession(config)
	if err != nil {
		logger.Error("unable to create cassandra session", zap.Error(err))
		return nil, err
	}
	session := Session{
		config:   config,
		profiles: profiles,
		logger:   logger,
	}
	session.Value.Store(cqlSession)
	return &session, nil
}

// Execute builds the gocql query for stmt, issues it, and primes the cursor
// so connection-level failures surface here rather than at first iteration.
func (s *Session) Execute(ctx context.Context, stmt cql.Statement) (cql.ResultSet, error) {
	q, err := s.buildQuery(ctx, stmt)
	if err != nil {
		return nil, err
	}
	rs, err := newResultSet(q.Iter())
	if err != nil {
		return nil, s.handleError(err)
	}
	return rs, nil
}

// Prepare returns a handle binding values to stmt. The gocql driver prepares
// statements lazily on first execution and caches them per connection, so no
// round trip happens here; option application therefore lands on the bound
// statement, which is the only representation the driver lets us configure.
func (s *Session) Prepare(ctx context.Context, stmt string) (cql.PreparedStatement, error) {
	return &preparedStatement{stmt: stmt}, nil
}

func (s *Session) Close() {
	s.Value.Load().(*gocql.Session).Close()
}

func (s *Session) refresh() error {
	newSession, err := initSession(s.config)
	if err != nil {
		return err
	}
	oldSession := s.Value.Load().(*gocql.Session)
	s.Value.Store(newSession)
	oldSession.Close()
	return nil
}

func (s *Session) handleError(err error) error {
	if err == gocql.ErrNoConnections {
		s.logger.Warn("cassandra session lost all connections, refreshing")
		_ = s.refresh()
	}
	return err
}
